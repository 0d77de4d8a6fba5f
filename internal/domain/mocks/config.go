package mocks

import (
	"errors"
	"sort"
)

var errGateClosed = errors.New("gate closed")

// ConfigSource is a mock implementation of ports.ConfigSource.
type ConfigSource struct {
	Values map[string]any
}

// NewConfigSource creates a source over values.
func NewConfigSource(values map[string]any) *ConfigSource {
	if values == nil {
		values = make(map[string]any)
	}
	return &ConfigSource{Values: values}
}

// Entry returns the value at key.
func (m *ConfigSource) Entry(key string) (any, bool) {
	v, ok := m.Values[key]
	return v, ok
}

// Keys returns the sorted keys.
func (m *ConfigSource) Keys() []string {
	keys := make([]string, 0, len(m.Values))
	for k := range m.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
