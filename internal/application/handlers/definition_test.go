package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drachir000/elib/internal/domain/entities"
	"github.com/drachir000/elib/internal/domain/services"
)

func TestDefinitionHandler_HandleList(t *testing.T) {
	env := setupEnv(t)

	result := env.definitions.HandleList()

	require.Equal(t, 3, result.Total)
	keys := make([]string, 0, result.Total)
	for _, d := range result.Definitions {
		keys = append(keys, d.Key)
		assert.True(t, d.Builtin)
		assert.True(t, d.Installed)
	}
	assert.ElementsMatch(t, []string{"minecraft:sharpness", "minecraft:smite", "minecraft:mending"}, keys)
}

func TestDefinitionHandler_HandleShow(t *testing.T) {
	env := setupEnv(t)

	view, err := env.definitions.HandleShow("sharpness")

	require.NoError(t, err)
	assert.Equal(t, "minecraft:sharpness", view.Key)
	assert.Equal(t, "Sharpness", view.Name)
	assert.Equal(t, 5, view.MaxLevel)
	assert.Equal(t, "WEAPON", view.Target)
	assert.Equal(t, []string{"minecraft:smite"}, view.Conflicts)
	assert.Equal(t, []string{"diamond_sword"}, view.Enchantable)
}

func TestDefinitionHandler_HandleShow_Errors(t *testing.T) {
	env := setupEnv(t)

	tests := []struct {
		name string
		key  string
		want error
	}{
		{name: "unregistered", key: "minecraft:protection", want: ErrUnknownDefinition},
		{name: "invalid key", key: "Not A Key", want: entities.ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.definitions.HandleShow(tt.key)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDefinitionHandler_HandleAdd(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	view, err := env.definitions.HandleAdd(ctx, AddDefinitionRequest{
		Key:         "test:life_steal",
		MaxLevel:    3,
		Target:      "weapon",
		Conflicts:   []string{"sharpness"},
		Enchantable: []string{" Diamond_Sword "},
	})

	require.NoError(t, err)
	assert.Equal(t, "test:life_steal", view.Key)
	assert.Equal(t, "Life Steal", view.Name)
	assert.Equal(t, 1, view.MinLevel)
	assert.Equal(t, 3, view.MaxLevel)
	assert.Equal(t, "WEAPON", view.Target)
	assert.Equal(t, []string{"minecraft:sharpness"}, view.Conflicts)
	assert.Equal(t, []string{"diamond_sword"}, view.Enchantable)
	assert.False(t, view.Builtin)
	assert.True(t, view.Installed)

	def := env.registry.LookupString("test:life_steal")
	require.NotNil(t, def)
	assert.Equal(t, entities.DefaultLorePrefix, def.PrefixFor(1))
	assert.Equal(t, entities.DefaultMaxLorePrefix, def.PrefixFor(3))

	stored, err := env.store.ListDefinitions(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "test:life_steal", stored[0].Key().String())
}

func TestDefinitionHandler_HandleAdd_Errors(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	_, err := env.definitions.HandleAdd(ctx, AddDefinitionRequest{Key: "test:frost"})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  AddDefinitionRequest
		want error
	}{
		{name: "no namespace", req: AddDefinitionRequest{Key: "frost"}, want: entities.ErrInvalidKey},
		{name: "builtin namespace", req: AddDefinitionRequest{Key: "minecraft:frost"}, want: services.ErrBuiltinKey},
		{name: "duplicate", req: AddDefinitionRequest{Key: "test:frost"}, want: services.ErrAlreadyRegistered},
		{name: "bad conflict", req: AddDefinitionRequest{Key: "test:other", Conflicts: []string{"a b"}}, want: entities.ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.definitions.HandleAdd(ctx, tt.req)
			require.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("bad target", func(t *testing.T) {
		_, err := env.definitions.HandleAdd(ctx, AddDefinitionRequest{Key: "test:other", Target: "SPOON"})
		require.Error(t, err)
		assert.False(t, env.registry.IsRegisteredString("test:other"))
	})
}

func TestDefinitionHandler_HandleRemove(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	_, err := env.definitions.HandleAdd(ctx, AddDefinitionRequest{Key: "test:frost"})
	require.NoError(t, err)

	require.NoError(t, env.definitions.HandleRemove(ctx, "test:frost"))

	assert.False(t, env.registry.IsRegisteredString("test:frost"))
	assert.False(t, env.table.Contains(entities.MustKey("test", "frost")))
	stored, err := env.store.ListDefinitions(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)

	err = env.definitions.HandleRemove(ctx, "test:frost")
	require.ErrorIs(t, err, services.ErrDefinitionNotFound)

	err = env.definitions.HandleRemove(ctx, "sharpness")
	require.ErrorIs(t, err, services.ErrBuiltinKey)
}

func TestDefinitionHandler_HandleConflicts(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	_, err := env.definitions.HandleAdd(ctx, AddDefinitionRequest{
		Key:       "test:frost",
		Conflicts: []string{"minecraft:mending"},
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		a, b   string
		wantAB bool
		wantBA bool
	}{
		{name: "mutual", a: "sharpness", b: "smite", wantAB: true, wantBA: true},
		{name: "one way", a: "test:frost", b: "mending", wantAB: true, wantBA: false},
		{name: "reversed", a: "mending", b: "test:frost", wantAB: false, wantBA: true},
		{name: "none", a: "sharpness", b: "mending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := env.definitions.HandleConflicts(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAB, result.AConflictsB)
			assert.Equal(t, tt.wantBA, result.BConflictsA)
		})
	}

	_, err = env.definitions.HandleConflicts("sharpness", "test:missing")
	require.ErrorIs(t, err, ErrUnknownDefinition)
}
