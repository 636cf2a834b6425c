package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// JSONParser implements the Parser interface for flat JSON objects.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses a JSON object mapping string keys to string values.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	return flatten(data)
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "json")
}
