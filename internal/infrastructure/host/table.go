package host

import (
	"errors"
	"fmt"
	"slices"

	"github.com/drachir000/elib/internal/domain/entities"
	"github.com/drachir000/elib/internal/domain/ports"
)

var (
	// ErrGateClosed is returned by Insert while the accept-new gate is closed.
	ErrGateClosed = errors.New("enchantment table is not accepting registrations")
	// ErrGateSealed is returned by OpenForInsertion once the table is sealed.
	ErrGateSealed = errors.New("enchantment table is sealed")
	// ErrDuplicateKey is returned by Insert for a key already in the table.
	ErrDuplicateKey = errors.New("enchantment key already registered")
	// ErrDuplicateName is returned by Insert for a name already in the table.
	ErrDuplicateName = errors.New("enchantment name already registered")
	// ErrNotInstalled is returned by RemoveIndexes for an unknown key.
	ErrNotInstalled = errors.New("enchantment not in table")
)

// Table is the host's global enchantment table. It keeps a by-key and a
// by-name index and refuses inserts unless its gate has been opened.
//
// Table does no locking of its own; see ports.EnchantmentTable.
type Table struct {
	byKey        map[entities.Key]string
	byName       map[string]entities.Key
	order        []entities.Key
	acceptingNew bool
	sealed       bool
}

var _ ports.EnchantmentTable = (*Table)(nil)

// NewTable creates a table seeded with the host's built-in enchantments,
// gate closed.
func NewTable() *Table {
	t := &Table{
		byKey:  make(map[entities.Key]string),
		byName: make(map[string]entities.Key),
	}
	for _, k := range entities.VanillaKeys() {
		t.add(k, k.Name)
	}
	return t
}

// Seal closes the gate for good: later OpenForInsertion calls fail. This is
// how the host behaves once startup registration has finished.
func (t *Table) Seal() {
	t.sealed = true
	t.acceptingNew = false
}

// AcceptingNew reports whether the gate is currently open.
func (t *Table) AcceptingNew() bool {
	return t.acceptingNew
}

// Contains reports whether key is in the by-key index.
func (t *Table) Contains(key entities.Key) bool {
	_, ok := t.byKey[key]
	return ok
}

// NameOf returns the name indexed for key.
func (t *Table) NameOf(key entities.Key) (string, bool) {
	name, ok := t.byKey[key]
	return name, ok
}

// Keys lists the keys in insertion order.
func (t *Table) Keys() []entities.Key {
	keys := make([]entities.Key, 0, len(t.order))
	for _, k := range t.order {
		if _, ok := t.byKey[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// OpenForInsertion opens the accept-new gate.
func (t *Table) OpenForInsertion() error {
	if t.sealed {
		return ErrGateSealed
	}
	t.acceptingNew = true
	return nil
}

// Insert adds key under name.
func (t *Table) Insert(key entities.Key, name string) error {
	if !t.acceptingNew {
		return ErrGateClosed
	}
	if _, ok := t.byKey[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}
	if _, ok := t.byName[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	t.add(key, name)
	return nil
}

// CloseForInsertion closes the accept-new gate.
func (t *Table) CloseForInsertion() {
	t.acceptingNew = false
}

// RemoveIndexes drops key from both indexes.
func (t *Table) RemoveIndexes(key entities.Key) error {
	name, ok := t.byKey[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotInstalled, key)
	}
	delete(t.byKey, key)
	if t.byName[name] == key {
		delete(t.byName, name)
	}
	return nil
}

func (t *Table) add(key entities.Key, name string) {
	t.byKey[key] = name
	t.byName[name] = key
	if !slices.Contains(t.order, key) {
		t.order = append(t.order, key)
	}
}
