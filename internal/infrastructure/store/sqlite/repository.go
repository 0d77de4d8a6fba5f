// Package sqlite provides a SQLite implementation of the Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/drachir000/elib/internal/domain/entities"
	"github.com/drachir000/elib/internal/domain/ports"
)

var (
	// ErrItemNotFound is returned when deleting an item that doesn't exist.
	ErrItemNotFound = errors.New("item not found")
	// ErrDefinitionNotFound is returned when deleting an unknown definition.
	ErrDefinitionNotFound = errors.New("definition not found")
)

const memoryPath = ":memory:"

// GenerateID returns a new item ID.
func GenerateID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.Store using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

var _ ports.Store = (*Repository)(nil)

// NewRepository opens the database at path.
func NewRepository(path string) (*Repository, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if path == memoryPath {
		db.SetMaxOpenConns(1)
	} else {
		// Enable WAL mode for better concurrent read/write performance
		if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enabling WAL mode: %w", err)
		}
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Item stacks with their lore and tag metadata
	CREATE TABLE IF NOT EXISTS items (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		amount INTEGER NOT NULL DEFAULT 1,
		lore TEXT NOT NULL DEFAULT '[]',
		tags TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_items_created ON items(created_at);

	-- Custom enchantment definitions (re-registered on startup)
	CREATE TABLE IF NOT EXISTS definitions (
		key TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		default_prefix TEXT NOT NULL,
		max_prefix TEXT NOT NULL,
		min_level INTEGER NOT NULL,
		max_level INTEGER NOT NULL,
		target TEXT NOT NULL,
		curse INTEGER NOT NULL DEFAULT 0,
		conflicts TEXT NOT NULL DEFAULT '[]',
		enchantable TEXT NOT NULL DEFAULT '[]',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Audit log (tracks item changes)
	CREATE TABLE IF NOT EXISTS audit_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		action TEXT NOT NULL,
		item_id TEXT,
		details TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_audit_log_item ON audit_log(item_id);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveItem saves or updates an item. A missing ID or creation time is filled in.
func (r *Repository) SaveItem(ctx context.Context, item *entities.StoredItem) error {
	now := timeNow()
	if item.ID == "" {
		item.ID = GenerateID()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	lore := item.Lore
	if lore == nil {
		lore = []string{}
	}
	loreJSON, err := json.Marshal(lore)
	if err != nil {
		return fmt.Errorf("marshaling lore: %w", err)
	}

	var tags sql.NullString
	if len(item.Tags) > 0 {
		tags = sql.NullString{String: string(item.Tags), Valid: true}
	}

	query := `
		INSERT INTO items (id, type, amount, lore, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			type = excluded.type,
			amount = excluded.amount,
			lore = excluded.lore,
			tags = excluded.tags,
			updated_at = excluded.updated_at
	`
	_, err = r.db.ExecContext(ctx, query,
		item.ID,
		item.Type,
		item.Amount,
		string(loreJSON),
		tags,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving item: %w", err)
	}
	return nil
}

// FindItem finds an item by ID. Returns nil if not found.
func (r *Repository) FindItem(ctx context.Context, id string) (*entities.StoredItem, error) {
	query := `
		SELECT id, type, amount, lore, tags, created_at, updated_at
		FROM items
		WHERE id = ?
	`
	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems lists items ordered by creation time.
func (r *Repository) ListItems(ctx context.Context, limit, offset int) ([]*entities.StoredItem, error) {
	query := `
		SELECT id, type, amount, lore, tags, created_at, updated_at
		FROM items
		ORDER BY created_at ASC, rowid ASC
		LIMIT ? OFFSET ?
	`
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	result := make([]*entities.StoredItem, 0, 16)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// DeleteItem deletes an item by ID.
func (r *Repository) DeleteItem(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*entities.StoredItem, error) {
	var item entities.StoredItem
	var lore string
	var tags sql.NullString

	err := row.Scan(
		&item.ID,
		&item.Type,
		&item.Amount,
		&lore,
		&tags,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning item: %w", err)
	}

	if err := json.Unmarshal([]byte(lore), &item.Lore); err != nil {
		return nil, fmt.Errorf("unmarshaling lore: %w", err)
	}
	if tags.Valid && tags.String != "" {
		item.Tags = json.RawMessage(tags.String)
	}
	return &item, nil
}

// SaveDefinition saves or updates a custom definition.
func (r *Repository) SaveDefinition(ctx context.Context, def *entities.Definition) error {
	conflicts, err := json.Marshal(def.Conflicts())
	if err != nil {
		return fmt.Errorf("marshaling conflicts: %w", err)
	}
	enchantable, err := json.Marshal(def.Enchantable())
	if err != nil {
		return fmt.Errorf("marshaling enchantable: %w", err)
	}

	query := `
		INSERT INTO definitions (key, name, default_prefix, max_prefix, min_level, max_level,
			target, curse, conflicts, enchantable, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			name = excluded.name,
			default_prefix = excluded.default_prefix,
			max_prefix = excluded.max_prefix,
			min_level = excluded.min_level,
			max_level = excluded.max_level,
			target = excluded.target,
			curse = excluded.curse,
			conflicts = excluded.conflicts,
			enchantable = excluded.enchantable
	`
	_, err = r.db.ExecContext(ctx, query,
		def.Key().String(),
		def.Name(),
		def.DefaultPrefix(),
		def.MaxPrefix(),
		def.MinLevel(),
		def.MaxLevel(),
		string(def.Target()),
		def.IsCurse(),
		string(conflicts),
		string(enchantable),
		timeNow(),
	)
	if err != nil {
		return fmt.Errorf("saving definition: %w", err)
	}
	return nil
}

// ListDefinitions lists custom definitions in insertion order.
func (r *Repository) ListDefinitions(ctx context.Context) ([]*entities.Definition, error) {
	query := `
		SELECT key, name, default_prefix, max_prefix, min_level, max_level,
			target, curse, conflicts, enchantable
		FROM definitions
		ORDER BY created_at ASC, rowid ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying definitions: %w", err)
	}
	defer rows.Close()

	defs := make([]*entities.Definition, 0, 16)
	for rows.Next() {
		var (
			rawKey, target         string
			conflicts, enchantable string
			p                      entities.DefinitionParams
		)
		if err := rows.Scan(
			&rawKey,
			&p.Name,
			&p.DefaultPrefix,
			&p.MaxPrefix,
			&p.MinLevel,
			&p.MaxLevel,
			&target,
			&p.Curse,
			&conflicts,
			&enchantable,
		); err != nil {
			return nil, fmt.Errorf("scanning definition: %w", err)
		}

		key, err := entities.ParseKey(rawKey)
		if err != nil {
			return nil, fmt.Errorf("parsing definition key: %w", err)
		}
		p.Key = key
		p.Target = entities.Target(target)
		if err := json.Unmarshal([]byte(conflicts), &p.Conflicts); err != nil {
			return nil, fmt.Errorf("unmarshaling conflicts for %s: %w", rawKey, err)
		}
		if err := json.Unmarshal([]byte(enchantable), &p.Enchantable); err != nil {
			return nil, fmt.Errorf("unmarshaling enchantable for %s: %w", rawKey, err)
		}
		defs = append(defs, entities.NewDefinition(p))
	}
	return defs, rows.Err()
}

// DeleteDefinition deletes a custom definition by key.
func (r *Repository) DeleteDefinition(ctx context.Context, key entities.Key) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM definitions WHERE key = ?`, key.String())
	if err != nil {
		return fmt.Errorf("deleting definition: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", ErrDefinitionNotFound, key)
	}
	return nil
}

// LogAction logs an action to the audit log.
func (r *Repository) LogAction(ctx context.Context, action string, itemID string, details map[string]any) error {
	var detailsJSON sql.NullString
	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("marshaling details: %w", err)
		}
		detailsJSON = sql.NullString{String: string(data), Valid: true}
	}

	var itemIDPtr sql.NullString
	if itemID != "" {
		itemIDPtr = sql.NullString{String: itemID, Valid: true}
	}

	query := `INSERT INTO audit_log (action, item_id, details, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, action, itemIDPtr, detailsJSON, timeNow())
	if err != nil {
		return fmt.Errorf("logging action: %w", err)
	}
	return nil
}

// FindAuditLog finds audit log entries for an item, newest first.
func (r *Repository) FindAuditLog(ctx context.Context, itemID string) ([]entities.AuditEntry, error) {
	query := `
		SELECT id, action, item_id, details, created_at
		FROM audit_log
		WHERE item_id = ?
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	var entries []entities.AuditEntry
	for rows.Next() {
		var entry entities.AuditEntry
		var id, details sql.NullString

		if err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&id,
			&details,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}

		entry.ItemID = id.String

		if details.Valid && details.String != "" {
			if err := json.Unmarshal([]byte(details.String), &entry.Details); err != nil {
				return nil, fmt.Errorf("unmarshaling details: %w", err)
			}
		}

		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
