package catalog

import "errors"

var (
	// Discovery
	ErrFailedToReadRoot = errors.New("failed to read catalog root")
	ErrCatalogNotFound  = errors.New("catalog file not found")
	ErrInvalidRoot      = errors.New("invalid catalog root")

	// Parsing. A malformed catalog aborts the whole run.
	ErrMalformedCatalog    = errors.New("malformed catalog")
	ErrFailedToParseJSON   = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML   = errors.New("failed to parse YAML content")
	ErrFailedToParseTOML   = errors.New("failed to parse TOML content")
	ErrNotAnObject         = errors.New("catalog must be a flat object of string values")
	ErrNonStringValue      = errors.New("catalog value is not a string")
	ErrUnsupportedFormat   = errors.New("unsupported catalog file format")
	ErrParsingCancelled    = errors.New("catalog parsing cancelled")
	ErrLoadingCancelled    = errors.New("catalog loading cancelled")
	ErrFailedToReadCatalog = errors.New("failed to read catalog file")

	// S3 sources
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
	ErrInvalidS3Config    = errors.New("invalid S3 configuration")
)
