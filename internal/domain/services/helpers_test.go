package services

import (
	"github.com/drachir000/elib/internal/domain/entities"
	"github.com/drachir000/elib/internal/domain/mocks"
)

var (
	lifestealKey = entities.MustKey("test", "lifesteal")
	frostKey     = entities.MustKey("test", "frost")
	sharpKey     = entities.MustKey("minecraft", "sharpness")
)

func newDef(key entities.Key, name string, maxLevel int) *entities.Definition {
	return entities.NewDefinition(entities.DefinitionParams{
		Key:           key,
		Name:          name,
		DefaultPrefix: entities.DefaultLorePrefix,
		MaxPrefix:     entities.DefaultMaxLorePrefix,
		MinLevel:      1,
		MaxLevel:      maxLevel,
	})
}

// setupServices builds a registry over an empty mock table with lifesteal
// registered (max level 3), plus the reconciler and accessors on top.
func setupServices() (*Registry, *EnchantmentService, *mocks.EnchantmentTable) {
	table := mocks.NewEnchantmentTable()
	registry := NewRegistry(table, nil)
	registry.Register(newDef(lifestealKey, "Lifesteal", 3))
	reconciler := NewReconciler(registry, true, nil)
	return registry, NewEnchantmentService(registry, reconciler), table
}
