package services

import (
	"github.com/drachir000/elib/internal/domain/codec"
	"github.com/drachir000/elib/internal/domain/entities"
	"github.com/drachir000/elib/internal/domain/ports"
)

// RegisteredLevel is an enchantment on an item together with its definition.
type RegisteredLevel struct {
	Definition *entities.Definition
	Level      int
}

// EnchantmentService reads and changes enchantment levels on items.
//
// Levels are never checked against a definition's MinLevel/MaxLevel; those
// bounds only inform display and tooling.
type EnchantmentService struct {
	registry   *Registry
	reconciler *Reconciler
}

// NewEnchantmentService creates a new EnchantmentService.
func NewEnchantmentService(registry *Registry, reconciler *Reconciler) *EnchantmentService {
	return &EnchantmentService{
		registry:   registry,
		reconciler: reconciler,
	}
}

// Level returns the level stored on item for key, or 0. It reads the item's
// record directly, so it also sees enchantments whose definition has been
// unregistered.
func (s *EnchantmentService) Level(item ports.Item, key entities.Key) int {
	if item == nil {
		return 0
	}
	return codec.ReadRecord(item.Tags()).Level(key)
}

// LevelString is Level for a raw "namespace:name" key. Unparsable keys yield 0.
func (s *EnchantmentService) LevelString(item ports.Item, raw string) int {
	key, err := entities.ParseKey(raw)
	if err != nil {
		return 0
	}
	return s.Level(item, key)
}

// Has reports whether item carries key at a positive level.
func (s *EnchantmentService) Has(item ports.Item, key entities.Key) bool {
	return s.Level(item, key) > 0
}

// HasString is Has for a raw "namespace:name" key.
func (s *EnchantmentService) HasString(item ports.Item, raw string) bool {
	return s.LevelString(item, raw) > 0
}

// Enchantments returns the registered enchantments on item, in record order.
// Orphaned entries are left out.
func (s *EnchantmentService) Enchantments(item ports.Item) []RegisteredLevel {
	if item == nil {
		return nil
	}
	record := codec.ReadRecord(item.Tags())
	out := make([]RegisteredLevel, 0, len(record))
	for _, e := range record {
		def := s.registry.Lookup(e.Key)
		if def == nil {
			continue
		}
		level := e.Level
		if level > entities.MaxStoredLevel {
			level = entities.MaxStoredLevel
		}
		out = append(out, RegisteredLevel{Definition: def, Level: level})
	}
	return out
}

// SetLevel puts key on item at level and returns the previous level (0 if
// absent). A level below 1 behaves exactly like Remove. Positive levels are
// only applied for registered definitions; for anything else SetLevel does
// nothing and returns 0. With updateLore set, the item's lore is reconciled
// afterwards.
func (s *EnchantmentService) SetLevel(item ports.Item, key entities.Key, level int, updateLore bool) int {
	if item == nil {
		return 0
	}
	if level < 1 {
		return s.Remove(item, key, updateLore)
	}
	if !s.registry.IsRegistered(key) {
		return 0
	}

	previous := s.Level(item, key)
	item.ApplyEnchantment(key, level)
	if updateLore {
		s.reconciler.UpdateDescription(item)
	}
	return previous
}

// SetLevelString is SetLevel for a raw "namespace:name" key.
func (s *EnchantmentService) SetLevelString(item ports.Item, raw string, level int, updateLore bool) int {
	key, err := entities.ParseKey(raw)
	if err != nil {
		return 0
	}
	return s.SetLevel(item, key, level, updateLore)
}

// Remove takes key off item and returns the level it had (0 if absent). The
// key does not have to be registered. Lore is only reconciled when something
// was actually removed.
func (s *EnchantmentService) Remove(item ports.Item, key entities.Key, updateLore bool) int {
	if item == nil || !item.HasMeta() {
		return 0
	}

	previous := s.Level(item, key)
	item.RemoveEnchantment(key)
	if previous < 1 {
		return 0
	}
	if updateLore {
		s.reconciler.UpdateDescription(item)
	}
	return previous
}

// RemoveString is Remove for a raw "namespace:name" key.
func (s *EnchantmentService) RemoveString(item ports.Item, raw string, updateLore bool) int {
	key, err := entities.ParseKey(raw)
	if err != nil {
		return 0
	}
	return s.Remove(item, key, updateLore)
}

// UpdateDescription reconciles the item's lore.
func (s *EnchantmentService) UpdateDescription(item ports.Item) {
	s.reconciler.UpdateDescription(item)
}
