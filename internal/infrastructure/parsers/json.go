package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses a definitions file in JSON format. Numbers are kept as
// json.Number.
type JSONParser struct{}

// Parse reads a JSON object from the reader.
func (p *JSONParser) Parse(r io.Reader) (*Source, error) {
	var values map[string]any

	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	if err := decoder.Decode(&values); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	return NewSource(values), nil
}
