// Package ports defines the interfaces the domain expects from the host and
// from infrastructure.
package ports

// TagContainer is the host's persistent, nested key-value storage attached to
// an item. Getters never fail on malformed data: a value of the wrong shape is
// reported the same way as a missing one.
type TagContainer interface {
	// Has reports whether key is set, regardless of its type.
	Has(key string) bool

	// Remove deletes key. Removing a missing key is a no-op.
	Remove(key string)

	// Keys returns the keys set directly on this container, sorted.
	Keys() []string

	// GetBool returns the boolean at key.
	GetBool(key string) (bool, bool)

	// SetBool stores a boolean at key.
	SetBool(key string, value bool)

	// GetString returns the string at key.
	GetString(key string) (string, bool)

	// SetString stores a string at key.
	SetString(key string, value string)

	// GetInt returns the integer at key. Non-integral numbers and strings are
	// reported as missing.
	GetInt(key string) (int, bool)

	// SetInt stores an integer at key.
	SetInt(key string, value int)

	// GetStringList returns the string elements of the list at key, skipping
	// elements of any other type. It returns nil when key is not a list.
	GetStringList(key string) []string

	// SetStringList replaces the list at key.
	SetStringList(key string, values []string)

	// GetCompound returns the nested container at key.
	GetCompound(key string) (TagContainer, bool)

	// GetOrCreateCompound returns the nested container at key, creating it (and
	// replacing any non-container value) when needed.
	GetOrCreateCompound(key string) TagContainer

	// GetCompoundList returns the container elements of the list at key,
	// skipping elements of any other type. Mutations on the returned
	// containers are visible in the parent.
	GetCompoundList(key string) []TagContainer

	// AddCompound appends a new container to the list at key and returns it,
	// replacing any non-list value at key.
	AddCompound(key string) TagContainer

	// RemoveCompound removes the index-th container element of the list at
	// key, numbered the way GetCompoundList numbers them. It reports whether
	// an element was removed.
	RemoveCompound(key string, index int) bool
}
