package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drachir000/elib/internal/domain/codec"
	"github.com/drachir000/elib/internal/domain/entities"
	"github.com/drachir000/elib/internal/domain/mocks"
)

func TestEnchantmentService_SetLevelRoundTrip(t *testing.T) {
	_, svc, _ := setupServices()

	tests := []struct {
		name     string
		level    int
		wantLine string
	}{
		{name: "below max uses default prefix", level: 1, wantLine: gray + "Lifesteal I"},
		{name: "at max uses max prefix", level: 3, wantLine: gold + "Lifesteal III"},
		{name: "above max uses max prefix", level: 12, wantLine: gold + "Lifesteal XII"},
		{name: "past roman range", level: 150, wantLine: gold + "Lifesteal 150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := mocks.NewItemWithMeta("diamond_sword")

			prev := svc.SetLevel(item, lifestealKey, tt.level, true)

			assert.Zero(t, prev)
			assert.Equal(t, tt.level, svc.Level(item, lifestealKey))
			assert.True(t, svc.Has(item, lifestealKey))
			assert.Contains(t, item.Lore(), tt.wantLine)
		})
	}
}

func TestEnchantmentService_SetLevelReturnsPrevious(t *testing.T) {
	_, svc, _ := setupServices()
	item := mocks.NewItem("diamond_sword")

	assert.Zero(t, svc.SetLevel(item, lifestealKey, 2, false))
	assert.True(t, item.HasMeta(), "first write creates metadata")
	assert.Equal(t, 2, svc.SetLevel(item, lifestealKey, 3, false))
	assert.Equal(t, 3, svc.Level(item, lifestealKey))
}

func TestEnchantmentService_SetLevelClamps(t *testing.T) {
	_, svc, _ := setupServices()
	item := mocks.NewItemWithMeta("diamond_sword")

	svc.SetLevel(item, lifestealKey, 40000, false)
	assert.Equal(t, entities.MaxStoredLevel, svc.Level(item, lifestealKey))
}

func TestEnchantmentService_SetLevelZeroIsRemove(t *testing.T) {
	tests := []struct {
		name  string
		level int
	}{
		{name: "zero", level: 0},
		{name: "negative", level: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svcA, _ := setupServices()
			_, svcB, _ := setupServices()
			a := mocks.NewItemWithMeta("diamond_sword", "user")
			b := mocks.NewItemWithMeta("diamond_sword", "user")
			svcA.SetLevel(a, lifestealKey, 2, true)
			svcB.SetLevel(b, lifestealKey, 2, true)

			prevA := svcA.SetLevel(a, lifestealKey, tt.level, true)
			prevB := svcB.Remove(b, lifestealKey, true)

			assert.Equal(t, 2, prevA)
			assert.Equal(t, prevB, prevA)
			assert.Equal(t, b.Lore(), a.Lore())
			assert.Equal(t, codec.ReadRecord(b.Meta), codec.ReadRecord(a.Meta))
		})
	}
}

func TestEnchantmentService_UnregisteredKeyIsNoop(t *testing.T) {
	_, svc, _ := setupServices()
	item := mocks.NewItemWithMeta("diamond_sword")

	assert.Zero(t, svc.SetLevel(item, frostKey, 2, true))
	assert.False(t, svc.Has(item, frostKey))
	assert.Zero(t, item.ApplyCallCount)
	assert.Zero(t, item.SetLoreCount)
}

func TestEnchantmentService_RemoveAbsent(t *testing.T) {
	_, svc, _ := setupServices()

	noMeta := mocks.NewItem("stick")
	assert.Zero(t, svc.Remove(noMeta, lifestealKey, true))
	assert.False(t, noMeta.HasMeta())

	item := mocks.NewItemWithMeta("stick", "user")
	assert.Zero(t, svc.Remove(item, lifestealKey, true))
	assert.Zero(t, item.SetLoreCount, "nothing removed, lore untouched")
}

func TestEnchantmentService_RemoveOrphan(t *testing.T) {
	registry, svc, _ := setupServices()
	item := mocks.NewItemWithMeta("diamond_sword")
	svc.SetLevel(item, lifestealKey, 2, true)
	registry.UnregisterKey(lifestealKey)

	assert.Equal(t, 2, svc.Remove(item, lifestealKey, true))
	assert.False(t, svc.Has(item, lifestealKey))
	assert.Empty(t, item.Lore())
}

func TestEnchantmentService_StringVariants(t *testing.T) {
	_, svc, _ := setupServices()
	item := mocks.NewItemWithMeta("diamond_sword")

	assert.Zero(t, svc.SetLevelString(item, "test:lifesteal", 2, false))
	assert.Equal(t, 2, svc.LevelString(item, "test:lifesteal"))
	assert.True(t, svc.HasString(item, "test:lifesteal"))
	assert.False(t, svc.HasString(item, "lifesteal"), "bare names resolve to the host namespace")
	assert.Zero(t, svc.LevelString(item, "Bad Key"))
	assert.Zero(t, svc.SetLevelString(item, "Bad Key", 1, false))
	assert.Zero(t, svc.RemoveString(item, "::", false))
	assert.Equal(t, 2, svc.RemoveString(item, "test:lifesteal", false))
}

func TestEnchantmentService_NilItem(t *testing.T) {
	_, svc, _ := setupServices()
	assert.NotPanics(t, func() {
		assert.Zero(t, svc.Level(nil, lifestealKey))
		assert.Zero(t, svc.SetLevel(nil, lifestealKey, 1, true))
		assert.Zero(t, svc.Remove(nil, lifestealKey, true))
		assert.Nil(t, svc.Enchantments(nil))
		svc.UpdateDescription(nil)
	})
}

func TestEnchantmentService_Enchantments(t *testing.T) {
	registry, svc, _ := setupServices()
	frost := newDef(frostKey, "Frost", 2)
	registry.Register(frost)
	item := mocks.NewItemWithMeta("diamond_sword")

	svc.SetLevel(item, frostKey, 1, false)
	svc.SetLevel(item, lifestealKey, 3, false)
	item.Meta.GetOrCreateCompound("unrelated")
	codec.WriteLevel(item.Meta, entities.MustKey("test", "orphan"), 4)

	got := svc.Enchantments(item)
	require.Len(t, got, 2)
	assert.Same(t, frost, got[0].Definition)
	assert.Equal(t, 1, got[0].Level)
	assert.Equal(t, lifestealKey, got[1].Definition.Key())
	assert.Equal(t, 3, got[1].Level)
}

func TestEnchantmentService_ConflictsAreNotEnforced(t *testing.T) {
	registry, svc, _ := setupServices()
	frost := newDef(frostKey, "Frost", 2)
	frost.SetConflicts([]entities.Key{lifestealKey})
	registry.Register(frost)
	item := mocks.NewItemWithMeta("diamond_sword")

	svc.SetLevel(item, lifestealKey, 1, false)
	svc.SetLevel(item, frostKey, 1, false)

	assert.True(t, svc.Has(item, frostKey))
	assert.True(t, registry.ConflictsByKey(frostKey, lifestealKey))
	assert.False(t, registry.ConflictsByKey(lifestealKey, frostKey))
}

func TestEnchantmentService_DefinitionEditsShowOnNextReconcile(t *testing.T) {
	registry, svc, _ := setupServices()
	item := mocks.NewItemWithMeta("diamond_sword", "user")
	svc.SetLevel(item, lifestealKey, 2, true)

	def := registry.Lookup(lifestealKey)
	def.SetName("Vampirism")
	def.SetMaxLevel(2)
	svc.UpdateDescription(item)

	assert.Equal(t, []string{gold + "Vampirism II", "", "user"}, item.Lore())
}
