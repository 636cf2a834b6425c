package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Parser turns the raw content of one catalog file into a flat key -> text map.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]string, error)

	// SupportsFileExtension reports whether the parser handles ext.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil if
// the extension is not supported.
func NewParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	case "toml":
		return NewTOMLParser()
	default:
		return nil
	}
}

// flatten checks that every value of a decoded document is a string.
func flatten(data map[string]any) (map[string]string, error) {
	if data == nil {
		return nil, ErrNotAnObject
	}

	result := make(map[string]string, len(data))
	for key, val := range data {
		s, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("%w: key %q holds %T", ErrNonStringValue, key, val)
		}
		result[key] = s
	}
	return result, nil
}
