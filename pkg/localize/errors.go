package localize

import "errors"

var (
	ErrInvalidLayout       = errors.New("invalid localization layout")
	ErrUnknownLanguage     = errors.New("unknown language")
	ErrFailedToReadCatalog = errors.New("failed to read catalog")
	ErrMissingTranslation  = errors.New("missing translation")
)
