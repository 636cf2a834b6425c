package compiler

import (
	"errors"
	"fmt"
)

var (
	ErrRejected             = errors.New("localization catalogs rejected")
	ErrInvalidOutput        = errors.New("invalid output path")
	ErrFailedToLoad         = errors.New("failed to load catalogs")
	ErrFailedToGenerate     = errors.New("failed to generate artifacts")
	ErrFailedToCreateDir    = errors.New("failed to create directory")
	ErrFailedToWriteFile    = errors.New("failed to write file")
	ErrFailedToReadFile     = errors.New("failed to read existing file")
	ErrUnsupportedOutcome   = errors.New("unsupported outcome")
	ErrCompilationCancelled = errors.New("compilation cancelled")
)

// RejectedError carries the diagnostics of a rejected run.
type RejectedError struct {
	Diagnostics []string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %d problem(s)", ErrRejected, len(e.Diagnostics))
}

func (e *RejectedError) Unwrap() error { return ErrRejected }
