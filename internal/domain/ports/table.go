package ports

import "github.com/drachir000/elib/internal/domain/entities"

// EnchantmentTable is the host's process-wide enchantment table. It indexes
// entries by key and by display name and only accepts new entries while its
// gate is open.
//
// Implementations are not expected to be safe for concurrent use; callers
// serialize access (the Registry holds a single lock around every call).
type EnchantmentTable interface {
	// Contains reports whether key is present in the by-key index.
	Contains(key entities.Key) bool

	// Keys lists every key in the table.
	Keys() []entities.Key

	// OpenForInsertion opens the accept-new gate.
	OpenForInsertion() error

	// Insert adds an entry. It fails when the gate is closed or when the key
	// or name is already taken.
	Insert(key entities.Key, name string) error

	// CloseForInsertion closes the accept-new gate.
	CloseForInsertion()

	// RemoveIndexes drops key from both the by-key and by-name indexes.
	RemoveIndexes(key entities.Key) error
}
