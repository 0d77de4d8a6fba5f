package sqlite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drachir000/elib/internal/domain/entities"
)

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	err = repo.EnsureSchema(context.Background())
	require.NoError(t, err)

	return repo
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(":memory:")
		require.NoError(t, err)
		defer repo.Close()
		assert.Equal(t, ":memory:", repo.Path())
	})

	t.Run("success with file database", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "elib.db")
		repo, err := NewRepository(path)
		require.NoError(t, err)
		defer repo.Close()
		require.NoError(t, repo.EnsureSchema(context.Background()))
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository("")
		require.Error(t, err)
	})
}

func TestRepository_EnsureSchema(t *testing.T) {
	repo := setupTestRepo(t)

	// Verify tables exist
	tables := []string{"items", "definitions", "audit_log"}
	for _, table := range tables {
		var count int
		err := repo.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}

	// Should not error when called again
	require.NoError(t, repo.EnsureSchema(context.Background()))
}

func TestRepository_Items(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	t.Run("save assigns id and timestamps", func(t *testing.T) {
		item := &entities.StoredItem{Type: "diamond_sword", Amount: 1}
		require.NoError(t, repo.SaveItem(ctx, item))

		assert.NotEmpty(t, item.ID)
		assert.False(t, item.CreatedAt.IsZero())

		found, err := repo.FindItem(ctx, item.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "diamond_sword", found.Type)
		assert.Equal(t, []string{}, found.Lore)
		assert.Nil(t, found.Tags)
	})

	t.Run("upsert keeps lore and tags", func(t *testing.T) {
		item := &entities.StoredItem{
			ID:     "item-1",
			Type:   "bow",
			Amount: 1,
			Lore:   []string{"§r§7Power I", "", "user"},
			Tags:   json.RawMessage(`{"Enchantments":[{"id":"minecraft:power","lvl":1}]}`),
		}
		require.NoError(t, repo.SaveItem(ctx, item))
		created := item.CreatedAt

		item.Amount = 3
		item.Lore = []string{"user"}
		require.NoError(t, repo.SaveItem(ctx, item))

		found, err := repo.FindItem(ctx, "item-1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, 3, found.Amount)
		assert.Equal(t, []string{"user"}, found.Lore)
		assert.JSONEq(t, string(item.Tags), string(found.Tags))
		assert.WithinDuration(t, created, found.CreatedAt, time.Second)
	})

	t.Run("find missing returns nil", func(t *testing.T) {
		found, err := repo.FindItem(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteItem(ctx, "item-1"))
		assert.ErrorIs(t, repo.DeleteItem(ctx, "item-1"), ErrItemNotFound)
	})
}

func TestRepository_ListItems(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, typ := range []string{"a", "b", "c", "d"} {
		item := &entities.StoredItem{ID: typ, Type: typ, Amount: 1, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.SaveItem(ctx, item))
	}

	tests := []struct {
		name   string
		limit  int
		offset int
		want   []string
	}{
		{name: "all", limit: 0, offset: 0, want: []string{"a", "b", "c", "d"}},
		{name: "first page", limit: 2, offset: 0, want: []string{"a", "b"}},
		{name: "second page", limit: 2, offset: 2, want: []string{"c", "d"}},
		{name: "past end", limit: 2, offset: 10, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := repo.ListItems(ctx, tt.limit, tt.offset)
			require.NoError(t, err)
			ids := make([]string, 0, len(items))
			for _, it := range items {
				ids = append(ids, it.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestRepository_Definitions(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	lifesteal := entities.NewDefinition(entities.DefinitionParams{
		Key:           entities.MustKey("test", "lifesteal"),
		Name:          "Lifesteal",
		DefaultPrefix: "§r§7",
		MaxPrefix:     "§r§6",
		MinLevel:      1,
		MaxLevel:      3,
		Target:        entities.TargetWeapon,
		Curse:         true,
		Conflicts:     []entities.Key{entities.MustKey("minecraft", "mending")},
		Enchantable:   []string{"diamond_sword"},
	})
	frost := entities.NewDefinition(entities.DefinitionParams{
		Key:  entities.MustKey("test", "frost"),
		Name: "Frost",
	})

	require.NoError(t, repo.SaveDefinition(ctx, lifesteal))
	require.NoError(t, repo.SaveDefinition(ctx, frost))

	defs, err := repo.ListDefinitions(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	got := defs[0]
	assert.Equal(t, lifesteal.Key(), got.Key())
	assert.Equal(t, "Lifesteal", got.Name())
	assert.Equal(t, "§r§7", got.DefaultPrefix())
	assert.Equal(t, "§r§6", got.MaxPrefix())
	assert.Equal(t, 1, got.MinLevel())
	assert.Equal(t, 3, got.MaxLevel())
	assert.Equal(t, entities.TargetWeapon, got.Target())
	assert.True(t, got.IsCurse())
	assert.Equal(t, []entities.Key{entities.MustKey("minecraft", "mending")}, got.Conflicts())
	assert.Equal(t, []string{"diamond_sword"}, got.Enchantable())

	assert.Equal(t, frost.Key(), defs[1].Key())
	assert.Empty(t, defs[1].Conflicts())

	t.Run("upsert", func(t *testing.T) {
		lifesteal.SetName("Vampirism")
		require.NoError(t, repo.SaveDefinition(ctx, lifesteal))

		defs, err := repo.ListDefinitions(ctx)
		require.NoError(t, err)
		require.Len(t, defs, 2)
		assert.Equal(t, "Vampirism", defs[0].Name())
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteDefinition(ctx, frost.Key()))
		assert.ErrorIs(t, repo.DeleteDefinition(ctx, frost.Key()), ErrDefinitionNotFound)

		defs, err := repo.ListDefinitions(ctx)
		require.NoError(t, err)
		assert.Len(t, defs, 1)
	})
}

func TestRepository_AuditLog(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.LogAction(ctx, entities.ActionCreate, "item-1", map[string]any{"type": "bow"}))
	require.NoError(t, repo.LogAction(ctx, entities.ActionEnchant, "item-1", map[string]any{
		"key":   "minecraft:power",
		"level": 2,
	}))
	require.NoError(t, repo.LogAction(ctx, entities.ActionReconcile, "item-2", nil))

	entries, err := repo.FindAuditLog(ctx, "item-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entities.ActionEnchant, entries[0].Action)
	assert.Equal(t, "minecraft:power", entries[0].Details["key"])
	assert.Equal(t, entities.ActionCreate, entries[1].Action)

	entries, err = repo.FindAuditLog(ctx, "item-2")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Details)

	entries, err = repo.FindAuditLog(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
