package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// TOMLParser implements the Parser interface for TOML documents without tables.
type TOMLParser struct{}

// NewTOMLParser creates a new TOMLParser instance
func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

// Parse parses TOML content and returns the key -> text map.
func (p *TOMLParser) Parse(ctx context.Context, content []byte) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	data := make(map[string]any)
	if err := toml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseTOML, err)
	}

	return flatten(data)
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *TOMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "toml")
}
