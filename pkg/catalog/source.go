package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Source is where catalog files live: a root whose immediate children are
// language directories.
type Source interface {
	// Languages returns the names of the immediate subdirectories of the root.
	Languages(ctx context.Context) ([]string, error)

	// ReadFile returns the content of <root>/<lang>/<name>.
	// It returns ErrCatalogNotFound when the file does not exist.
	ReadFile(ctx context.Context, lang, name string) ([]byte, error)

	// String describes the root for diagnostics.
	String() string
}

// S3Scheme prefixes catalog roots stored in an S3 bucket.
const S3Scheme = "s3://"

// OpenSource picks a Source for root: an S3Source for s3://bucket/prefix
// roots, a DirSource for anything else.
func OpenSource(ctx context.Context, root string, cfg S3Config, opts ...S3Option) (Source, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidRoot)
	}

	if rest, ok := strings.CutPrefix(root, S3Scheme); ok {
		bucket, prefix, _ := strings.Cut(rest, "/")
		if bucket == "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRoot, root)
		}
		cfg.Bucket = bucket
		cfg.Prefix = prefix
		return NewS3Source(ctx, cfg, opts...)
	}

	return NewDirSource(root), nil
}

// DirSource reads catalogs from the local filesystem.
type DirSource struct {
	root string
}

// NewDirSource creates a DirSource rooted at root.
func NewDirSource(root string) *DirSource {
	return &DirSource{root: root}
}

func (s *DirSource) String() string {
	return s.root
}

// Languages implements Source. Symlinks to directories count as languages.
func (s *DirSource) Languages(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadRoot, err)
	}

	var langs []string
	for _, entry := range entries {
		if entry.IsDir() {
			langs = append(langs, entry.Name())
			continue
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(filepath.Join(s.root, entry.Name()))
			if err == nil && info.IsDir() {
				langs = append(langs, entry.Name())
			}
		}
	}
	slices.Sort(langs)

	return langs, nil
}

// ReadFile implements Source. A directory in place of the file counts as absent.
func (s *DirSource) ReadFile(ctx context.Context, lang, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	path := filepath.Join(s.root, lang, name)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, path)
		}
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrCatalogNotFound, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}
	return content, nil
}
