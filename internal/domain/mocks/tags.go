// Package mocks provides mock implementations for testing.
package mocks

import (
	"sort"

	"github.com/drachir000/elib/internal/domain/ports"
)

// Tags is a map-backed ports.TagContainer. Values are stored as-is, so tests
// can plant malformed data with Set.
type Tags struct {
	Data map[string]any
}

// NewTags creates an empty Tags.
func NewTags() *Tags {
	return &Tags{Data: make(map[string]any)}
}

// Set stores any value at key.
func (m *Tags) Set(key string, value any) {
	m.Data[key] = value
}

// Has reports whether key is set.
func (m *Tags) Has(key string) bool {
	_, ok := m.Data[key]
	return ok
}

// Remove deletes key.
func (m *Tags) Remove(key string) {
	delete(m.Data, key)
}

// Keys returns the sorted keys.
func (m *Tags) Keys() []string {
	keys := make([]string, 0, len(m.Data))
	for k := range m.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetBool returns the bool at key.
func (m *Tags) GetBool(key string) (bool, bool) {
	v, ok := m.Data[key].(bool)
	return v, ok
}

// SetBool stores a bool.
func (m *Tags) SetBool(key string, value bool) {
	m.Data[key] = value
}

// GetString returns the string at key.
func (m *Tags) GetString(key string) (string, bool) {
	v, ok := m.Data[key].(string)
	return v, ok
}

// SetString stores a string.
func (m *Tags) SetString(key string, value string) {
	m.Data[key] = value
}

// GetInt returns the int at key. Only int values count.
func (m *Tags) GetInt(key string) (int, bool) {
	v, ok := m.Data[key].(int)
	return v, ok
}

// SetInt stores an int.
func (m *Tags) SetInt(key string, value int) {
	m.Data[key] = value
}

// GetStringList returns the string elements of the list at key.
func (m *Tags) GetStringList(key string) []string {
	list, ok := m.Data[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// SetStringList stores a list of strings.
func (m *Tags) SetStringList(key string, values []string) {
	list := make([]any, len(values))
	for i, v := range values {
		list[i] = v
	}
	m.Data[key] = list
}

// GetCompound returns the nested Tags at key.
func (m *Tags) GetCompound(key string) (ports.TagContainer, bool) {
	v, ok := m.Data[key].(*Tags)
	if !ok {
		return nil, false
	}
	return v, true
}

// GetOrCreateCompound returns or creates the nested Tags at key.
func (m *Tags) GetOrCreateCompound(key string) ports.TagContainer {
	if v, ok := m.Data[key].(*Tags); ok {
		return v
	}
	v := NewTags()
	m.Data[key] = v
	return v
}

// GetCompoundList returns the *Tags elements of the list at key.
func (m *Tags) GetCompoundList(key string) []ports.TagContainer {
	list, ok := m.Data[key].([]any)
	if !ok {
		return nil
	}
	out := make([]ports.TagContainer, 0, len(list))
	for _, v := range list {
		if t, ok := v.(*Tags); ok {
			out = append(out, t)
		}
	}
	return out
}

// AddCompound appends a new Tags to the list at key.
func (m *Tags) AddCompound(key string) ports.TagContainer {
	list, _ := m.Data[key].([]any)
	v := NewTags()
	m.Data[key] = append(list, v)
	return v
}

// RemoveCompound removes the index-th *Tags element of the list at key.
func (m *Tags) RemoveCompound(key string, index int) bool {
	list, ok := m.Data[key].([]any)
	if !ok || index < 0 {
		return false
	}
	seen := 0
	for i, v := range list {
		if _, ok := v.(*Tags); !ok {
			continue
		}
		if seen == index {
			m.Data[key] = append(list[:i:i], list[i+1:]...)
			return true
		}
		seen++
	}
	return false
}
