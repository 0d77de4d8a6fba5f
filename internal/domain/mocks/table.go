package mocks

import "github.com/drachir000/elib/internal/domain/entities"

// EnchantmentTable is a mock implementation of ports.EnchantmentTable.
type EnchantmentTable struct {
	Entries  map[entities.Key]string
	Order    []entities.Key
	GateOpen bool

	OpenErr   error
	InsertErr error
	RemoveErr error
	// PanicOnInsert makes Insert panic, standing in for a broken adapter.
	PanicOnInsert bool

	// Call tracking
	OpenCallCount   int
	InsertCallCount int
	CloseCallCount  int
	RemoveCallCount int
}

// NewEnchantmentTable creates a table holding keys.
func NewEnchantmentTable(keys ...entities.Key) *EnchantmentTable {
	m := &EnchantmentTable{Entries: make(map[entities.Key]string)}
	for _, k := range keys {
		m.Entries[k] = k.Name
		m.Order = append(m.Order, k)
	}
	return m
}

// Contains reports whether key is in Entries.
func (m *EnchantmentTable) Contains(key entities.Key) bool {
	_, ok := m.Entries[key]
	return ok
}

// Keys returns keys in insertion order.
func (m *EnchantmentTable) Keys() []entities.Key {
	out := make([]entities.Key, 0, len(m.Order))
	for _, k := range m.Order {
		if m.Contains(k) {
			out = append(out, k)
		}
	}
	return out
}

// OpenForInsertion opens the gate unless OpenErr is set.
func (m *EnchantmentTable) OpenForInsertion() error {
	m.OpenCallCount++
	if m.OpenErr != nil {
		return m.OpenErr
	}
	m.GateOpen = true
	return nil
}

// Insert adds key if the gate is open and InsertErr is unset.
func (m *EnchantmentTable) Insert(key entities.Key, name string) error {
	m.InsertCallCount++
	if m.PanicOnInsert {
		panic("insert failed")
	}
	if m.InsertErr != nil {
		return m.InsertErr
	}
	if !m.GateOpen {
		return errGateClosed
	}
	m.Entries[key] = name
	m.Order = append(m.Order, key)
	return nil
}

// CloseForInsertion closes the gate.
func (m *EnchantmentTable) CloseForInsertion() {
	m.CloseCallCount++
	m.GateOpen = false
}

// RemoveIndexes deletes key unless RemoveErr is set.
func (m *EnchantmentTable) RemoveIndexes(key entities.Key) error {
	m.RemoveCallCount++
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	delete(m.Entries, key)
	return nil
}
