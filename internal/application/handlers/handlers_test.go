package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drachir000/elib/internal/domain/services"
	"github.com/drachir000/elib/internal/infrastructure/host"
	"github.com/drachir000/elib/internal/infrastructure/parsers"
	"github.com/drachir000/elib/internal/infrastructure/store/sqlite"
)

const testVanilla = `
sharpness:
  name: Sharpness
  max-level: 5
  enchantment-target: WEAPON
  curse: false
  conflicts: [smite]
  enchantable: [diamond_sword]
smite:
  name: Smite
  max-level: 5
  enchantment-target: WEAPON
  curse: false
  conflicts: [sharpness]
  enchantable: [diamond_sword]
mending:
  name: Mending
  max-level: 1
  enchantment-target: BREAKABLE
  curse: false
  conflicts: []
  enchantable: []
`

type testEnv struct {
	table       *host.Table
	registry    *services.Registry
	store       *sqlite.Repository
	definitions *DefinitionHandler
	items       *ItemHandler
}

// setupEnv wires the real host table, registry and an in-memory sqlite store.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.NewRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.EnsureSchema(ctx))

	src, err := (&parsers.YAMLParser{}).Parse(strings.NewReader(testVanilla))
	require.NoError(t, err)

	table := host.NewTable()
	registry := services.NewRegistry(table, nil)
	_, err = registry.LoadVanilla(src, services.DefaultPrefixes())
	require.NoError(t, err)

	custom := services.NewCustomService(registry, store, nil)
	reconciler := services.NewReconciler(registry, true, nil)
	enchantments := services.NewEnchantmentService(registry, reconciler)

	return &testEnv{
		table:       table,
		registry:    registry,
		store:       store,
		definitions: NewDefinitionHandler(registry, custom, services.DefaultPrefixes()),
		items:       NewItemHandler(store, registry, enchantments, nil),
	}
}
