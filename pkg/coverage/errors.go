package coverage

import "errors"

var (
	ErrDefaultLanguageMissing = errors.New("default language missing")
	ErrIncompleteCoverage     = errors.New("incomplete key coverage")
)
