package mocks

import (
	"context"
	"sort"

	"github.com/drachir000/elib/internal/domain/entities"
)

// Store is an in-memory mock implementation of ports.Store.
type Store struct {
	Items       map[string]*entities.StoredItem
	Definitions []*entities.Definition
	Audit       []entities.AuditEntry

	SaveItemErr       error
	SaveDefinitionErr error
	ListErr           error
	DeleteErr         error

	// Call tracking
	SaveDefinitionCallCount   int
	DeleteDefinitionCallCount int
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{Items: make(map[string]*entities.StoredItem)}
}

// EnsureSchema is a no-op.
func (m *Store) EnsureSchema(_ context.Context) error { return nil }

// Close is a no-op.
func (m *Store) Close() error { return nil }

// SaveItem stores item by ID.
func (m *Store) SaveItem(_ context.Context, item *entities.StoredItem) error {
	if m.SaveItemErr != nil {
		return m.SaveItemErr
	}
	m.Items[item.ID] = item
	return nil
}

// FindItem returns the item with id, or nil.
func (m *Store) FindItem(_ context.Context, id string) (*entities.StoredItem, error) {
	return m.Items[id], nil
}

// ListItems returns items ordered by creation time.
func (m *Store) ListItems(_ context.Context, limit, offset int) ([]*entities.StoredItem, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]*entities.StoredItem, 0, len(m.Items))
	for _, it := range m.Items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if offset >= len(out) {
		return []*entities.StoredItem{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// DeleteItem removes the item with id.
func (m *Store) DeleteItem(_ context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Items, id)
	return nil
}

// SaveDefinition inserts or replaces def.
func (m *Store) SaveDefinition(_ context.Context, def *entities.Definition) error {
	m.SaveDefinitionCallCount++
	if m.SaveDefinitionErr != nil {
		return m.SaveDefinitionErr
	}
	for i, d := range m.Definitions {
		if d.Key() == def.Key() {
			m.Definitions[i] = def
			return nil
		}
	}
	m.Definitions = append(m.Definitions, def)
	return nil
}

// ListDefinitions returns definitions in insertion order.
func (m *Store) ListDefinitions(_ context.Context) ([]*entities.Definition, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]*entities.Definition, len(m.Definitions))
	copy(out, m.Definitions)
	return out, nil
}

// DeleteDefinition removes the definition with key.
func (m *Store) DeleteDefinition(_ context.Context, key entities.Key) error {
	m.DeleteDefinitionCallCount++
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i, d := range m.Definitions {
		if d.Key() == key {
			m.Definitions = append(m.Definitions[:i], m.Definitions[i+1:]...)
			return nil
		}
	}
	return nil
}

// LogAction appends to Audit.
func (m *Store) LogAction(_ context.Context, action string, itemID string, details map[string]any) error {
	m.Audit = append(m.Audit, entities.AuditEntry{
		ID:      int64(len(m.Audit) + 1),
		Action:  action,
		ItemID:  itemID,
		Details: details,
	})
	return nil
}

// FindAuditLog returns the entries for itemID, newest first.
func (m *Store) FindAuditLog(_ context.Context, itemID string) ([]entities.AuditEntry, error) {
	var out []entities.AuditEntry
	for i := len(m.Audit) - 1; i >= 0; i-- {
		if m.Audit[i].ItemID == itemID {
			out = append(out, m.Audit[i])
		}
	}
	return out, nil
}
