package parsers

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses a definitions file in YAML format.
type YAMLParser struct{}

// Parse reads a YAML mapping from the reader. An empty document yields an
// empty source.
func (p *YAMLParser) Parse(r io.Reader) (*Source, error) {
	var values map[string]any

	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return NewSource(values), nil
}
