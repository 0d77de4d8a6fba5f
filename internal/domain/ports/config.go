package ports

// ConfigSource is a raw key to structured entry store, such as a parsed
// vanilla definitions file.
type ConfigSource interface {
	// Entry returns the raw value stored under key. The value's shape is not
	// validated; callers decide what a malformed entry is.
	Entry(key string) (any, bool)

	// Keys lists the keys present in the source.
	Keys() []string
}
