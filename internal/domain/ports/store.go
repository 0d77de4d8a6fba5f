package ports

import (
	"context"

	"github.com/drachir000/elib/internal/domain/entities"
)

// Store persists items and custom definitions between runs.
type Store interface {
	// EnsureSchema creates the storage schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the underlying connection.
	Close() error

	// SaveItem inserts or updates an item.
	SaveItem(ctx context.Context, item *entities.StoredItem) error

	// FindItem finds an item by ID. Returns nil if not found.
	FindItem(ctx context.Context, id string) (*entities.StoredItem, error)

	// ListItems lists items ordered by creation time.
	ListItems(ctx context.Context, limit, offset int) ([]*entities.StoredItem, error)

	// DeleteItem deletes an item by ID.
	DeleteItem(ctx context.Context, id string) error

	// SaveDefinition inserts or updates a custom definition.
	SaveDefinition(ctx context.Context, def *entities.Definition) error

	// ListDefinitions lists custom definitions in insertion order.
	ListDefinitions(ctx context.Context) ([]*entities.Definition, error)

	// DeleteDefinition deletes a custom definition by key.
	DeleteDefinition(ctx context.Context, key entities.Key) error

	// LogAction logs an action to the audit log.
	LogAction(ctx context.Context, action string, itemID string, details map[string]any) error

	// FindAuditLog finds audit log entries for an item, newest first.
	FindAuditLog(ctx context.Context, itemID string) ([]entities.AuditEntry, error)
}
