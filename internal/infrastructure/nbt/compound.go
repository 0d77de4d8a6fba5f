// Package nbt implements the host's tag container: a tree of compounds and
// lists holding booleans, strings and numbers, persisted as JSON.
package nbt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/drachir000/elib/internal/domain/ports"
)

// Compound is a map-backed tag container. The zero value is not usable; use New.
//
// Nested compounds returned by GetCompound and friends share storage with
// their parent, so writes through them are visible from the root.
type Compound struct {
	data map[string]any
}

var _ ports.TagContainer = (*Compound)(nil)

// New returns an empty compound.
func New() *Compound {
	return &Compound{data: make(map[string]any)}
}

// FromMap wraps m without copying it.
func FromMap(m map[string]any) *Compound {
	if m == nil {
		m = make(map[string]any)
	}
	return &Compound{data: m}
}

// Parse decodes a JSON document into a compound. Numbers are kept as json.Number
// so integral values survive the round trip exactly.
func Parse(data []byte) (*Compound, error) {
	c := New()
	if err := c.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return c, nil
}

// Raw returns the underlying map.
func (c *Compound) Raw() map[string]any {
	return c.data
}

// Set stores an arbitrary value at key. It exists so callers (and tests) can
// place data the typed setters would not produce.
func (c *Compound) Set(key string, value any) {
	c.data[key] = value
}

// Has reports whether key is set.
func (c *Compound) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Remove deletes key.
func (c *Compound) Remove(key string) {
	delete(c.data, key)
}

// Keys returns the keys of this compound, sorted.
func (c *Compound) Keys() []string {
	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetBool returns the boolean at key. The host historically stored flags as
// bytes, so 0 and 1 are accepted too.
func (c *Compound) GetBool(key string) (bool, bool) {
	switch v := c.data[key].(type) {
	case bool:
		return v, true
	default:
		n, ok := toInt(v)
		if !ok || (n != 0 && n != 1) {
			return false, false
		}
		return n == 1, true
	}
}

// SetBool stores a boolean at key.
func (c *Compound) SetBool(key string, value bool) {
	c.data[key] = value
}

// GetString returns the string at key.
func (c *Compound) GetString(key string) (string, bool) {
	s, ok := c.data[key].(string)
	return s, ok
}

// SetString stores a string at key.
func (c *Compound) SetString(key, value string) {
	c.data[key] = value
}

// GetInt returns the integer at key.
func (c *Compound) GetInt(key string) (int, bool) {
	return toInt(c.data[key])
}

// SetInt stores an integer at key.
func (c *Compound) SetInt(key string, value int) {
	c.data[key] = value
}

// GetStringList returns the string elements of the list at key.
func (c *Compound) GetStringList(key string) []string {
	list, ok := c.data[key].([]any)
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

// SetStringList replaces the list at key.
func (c *Compound) SetStringList(key string, values []string) {
	list := make([]any, len(values))
	for i, v := range values {
		list[i] = v
	}
	c.data[key] = list
}

// GetCompound returns the nested compound at key.
func (c *Compound) GetCompound(key string) (ports.TagContainer, bool) {
	m, ok := c.data[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return FromMap(m), true
}

// GetOrCreateCompound returns the nested compound at key, creating it if
// missing or not a compound.
func (c *Compound) GetOrCreateCompound(key string) ports.TagContainer {
	if m, ok := c.data[key].(map[string]any); ok {
		return FromMap(m)
	}
	m := make(map[string]any)
	c.data[key] = m
	return FromMap(m)
}

// GetCompoundList returns the compound elements of the list at key.
func (c *Compound) GetCompoundList(key string) []ports.TagContainer {
	list, ok := c.data[key].([]any)
	if !ok {
		return nil
	}
	out := make([]ports.TagContainer, 0, len(list))
	for _, v := range list {
		if m, ok := v.(map[string]any); ok {
			out = append(out, FromMap(m))
		}
	}
	return out
}

// AddCompound appends a new compound to the list at key.
func (c *Compound) AddCompound(key string) ports.TagContainer {
	list, _ := c.data[key].([]any)
	m := make(map[string]any)
	c.data[key] = append(list, m)
	return FromMap(m)
}

// RemoveCompound removes the index-th compound element of the list at key.
func (c *Compound) RemoveCompound(key string, index int) bool {
	list, ok := c.data[key].([]any)
	if !ok || index < 0 {
		return false
	}
	seen := 0
	for i, v := range list {
		if _, ok := v.(map[string]any); !ok {
			continue
		}
		if seen == index {
			c.data[key] = append(list[:i:i], list[i+1:]...)
			return true
		}
		seen++
	}
	return false
}

// Clone returns a deep copy of the compound.
func (c *Compound) Clone() *Compound {
	return FromMap(cloneValue(c.data).(map[string]any))
}

// MarshalJSON implements json.Marshaler.
func (c *Compound) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Compound) UnmarshalJSON(data []byte) error {
	var m map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return fmt.Errorf("decoding tag compound: %w", err)
	}
	if m == nil {
		m = make(map[string]any)
	}
	c.data = m
	return nil
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		l := make([]any, len(t))
		for i, e := range t {
			l[i] = cloneValue(e)
		}
		return l
	default:
		return v
	}
}

// toInt converts integral numeric values of any width. Fractions, values out
// of int range, strings and other types are rejected.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return toInt(i)
	default:
		return 0, false
	}
}
