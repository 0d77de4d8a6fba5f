// Package entities contains core domain data structures.
package entities

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultNamespace is the host's own authority for built-in enchantments.
const DefaultNamespace = "minecraft"

// ErrInvalidKey is returned when a string cannot be parsed into a Key.
var ErrInvalidKey = errors.New("invalid key")

var (
	validNamespaceRegex = regexp.MustCompile(`^[a-z0-9._-]+$`)
	validNameRegex      = regexp.MustCompile(`^[a-z0-9/._-]+$`)
)

// Key is a two-part (namespace, name) identifier naming an enchantment
// uniquely across the system. Keys are comparable and can be used as map keys.
type Key struct {
	Namespace string
	Name      string
}

// NewKey builds a Key, validating both parts.
func NewKey(namespace, name string) (Key, error) {
	if !validNamespaceRegex.MatchString(namespace) {
		return Key{}, fmt.Errorf("%w: namespace %q", ErrInvalidKey, namespace)
	}
	if !validNameRegex.MatchString(name) {
		return Key{}, fmt.Errorf("%w: name %q", ErrInvalidKey, name)
	}
	return Key{Namespace: namespace, Name: name}, nil
}

// MustKey is like NewKey but panics on invalid input. Intended for
// package-level tables of known keys.
func MustKey(namespace, name string) Key {
	k, err := NewKey(namespace, name)
	if err != nil {
		panic(err)
	}
	return k
}

// ParseKey parses "namespace:name". A bare "name" resolves to DefaultNamespace.
func ParseKey(s string) (Key, error) {
	return ParseKeyIn(s, DefaultNamespace)
}

// ParseKeyIn parses "namespace:name", resolving a bare name into defaultNamespace.
func ParseKeyIn(s, defaultNamespace string) (Key, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Key{}, fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	namespace, name, found := strings.Cut(s, ":")
	if !found {
		return NewKey(defaultNamespace, s)
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return NewKey(namespace, name)
}

// String returns the "namespace:name" form stored in item tags.
func (k Key) String() string {
	return k.Namespace + ":" + k.Name
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool {
	return k.Namespace == "" && k.Name == ""
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
