package catalog

import (
	"context"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements the Parser interface for flat YAML mappings.
// Scalars that YAML resolves to non-strings (numbers, booleans) must be quoted.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse parses YAML content and returns the key -> text map.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	return flatten(data)
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
