package compiler

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// writeStatus tells whether writeFiles touched a file.
type writeStatus int

const (
	unchanged writeStatus = iota
	written
)

func (s writeStatus) String() string {
	if s == written {
		return "written"
	}
	return "unchanged"
}

type artifact struct {
	path    string
	content []byte
}

// staged is an artifact whose new content sits in a temporary file next to
// its destination.
type staged struct {
	artifact
	tmp      string
	previous []byte
	existed  bool
}

// writeFiles replaces every artifact's file as one unit, creating parent
// directories. Files whose content already matches are not touched.
//
// All new contents are first written to temporary files beside their
// destinations. Only when every one of them is complete are they renamed into
// place; a failed rename restores the files already replaced. Any error
// leaves every destination as it was.
func writeFiles(files ...artifact) ([]writeStatus, error) {
	statuses := make([]writeStatus, len(files))
	var pending []staged
	discard := func() {
		for _, s := range pending {
			_ = os.Remove(s.tmp)
		}
	}

	for i, f := range files {
		existing, err := os.ReadFile(f.path)
		existed := err == nil
		switch {
		case existed && bytes.Equal(existing, f.content):
			continue
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			discard()
			return nil, errors.Join(fmt.Errorf("%w: %s", ErrFailedToReadFile, f.path), err)
		}

		tmp, err := stage(f)
		if err != nil {
			discard()
			return nil, err
		}
		pending = append(pending, staged{artifact: f, tmp: tmp, previous: existing, existed: existed})
		statuses[i] = written
	}

	for i, s := range pending {
		if err := os.Rename(s.tmp, s.path); err != nil {
			rollback(pending[:i])
			discard()
			return nil, errors.Join(fmt.Errorf("%w: %s", ErrFailedToWriteFile, s.path), err)
		}
	}
	return statuses, nil
}

// stage writes f's content to a temporary file in f's directory and returns
// its name.
func stage(f artifact) (string, error) {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Join(fmt.Errorf("%w: %s", ErrFailedToCreateDir, dir), err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return "", errors.Join(fmt.Errorf("%w: %s", ErrFailedToWriteFile, f.path), err)
	}
	name := tmp.Name()

	_, err = tmp.Write(f.content)
	if err == nil {
		err = tmp.Chmod(0o644)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(name)
		return "", errors.Join(fmt.Errorf("%w: %s", ErrFailedToWriteFile, f.path), err)
	}
	return name, nil
}

// rollback puts back the previous content of files already renamed into place.
func rollback(done []staged) {
	for _, s := range done {
		if !s.existed {
			_ = os.Remove(s.path)
			continue
		}
		_ = os.WriteFile(s.path, s.previous, 0o644)
	}
}
