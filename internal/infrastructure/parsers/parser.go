// Package parsers reads definition files into configuration sources.
package parsers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/drachir000/elib/internal/domain/ports"
)

// Source is a parsed definitions file: a mapping from top-level key to the
// decoded value. Nested sections are map[string]any, lists are []any.
type Source struct {
	values map[string]any
}

var _ ports.ConfigSource = (*Source)(nil)

// NewSource wraps values. A nil map yields an empty source.
func NewSource(values map[string]any) *Source {
	if values == nil {
		values = make(map[string]any)
	}
	return &Source{values: values}
}

// Entry returns the value stored under key.
func (s *Source) Entry(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the top-level keys, sorted.
func (s *Source) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Parser defines the interface for parsing definition files.
type Parser interface {
	Parse(r io.Reader) (*Source, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "yaml", "yml", "json".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return &YAMLParser{}
	case "json":
		return &JSONParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	return ForFormat(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// LoadFile opens and parses the file at path. A missing file is reported
// with an error wrapping fs.ErrNotExist.
func LoadFile(path string) (*Source, error) {
	parser := ForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("unsupported definitions format: %s", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening definitions file: %w", err)
	}
	defer f.Close()

	return parser.Parse(f)
}
