package codegen

import "errors"

var (
	ErrIdentifierCollision = errors.New("identifier collision")
	ErrInvalidModel        = errors.New("invalid model")
	ErrUnsupportedCatalog  = errors.New("catalog format not supported by target")
	ErrFailedToRender      = errors.New("failed to render artifact")
	ErrFailedToFormat      = errors.New("failed to format generated source")
	ErrUnknownTarget       = errors.New("unknown target")
)
