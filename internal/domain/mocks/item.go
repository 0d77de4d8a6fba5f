package mocks

import (
	"slices"

	"github.com/drachir000/elib/internal/domain/codec"
	"github.com/drachir000/elib/internal/domain/entities"
	"github.com/drachir000/elib/internal/domain/ports"
)

// Item is a mock implementation of ports.Item. A nil Meta means the item has
// no metadata.
type Item struct {
	ItemType string
	Meta     *Tags
	Lines    []string

	// PanicOnSetLore makes SetLore panic, standing in for a broken host.
	PanicOnSetLore bool

	// Call tracking
	ApplyCallCount  int
	RemoveCallCount int
	SetLoreCount    int
}

// NewItem creates an item of itemType without metadata.
func NewItem(itemType string) *Item {
	return &Item{ItemType: itemType}
}

// NewItemWithMeta creates an item with empty metadata and the given lore.
func NewItemWithMeta(itemType string, lore ...string) *Item {
	return &Item{ItemType: itemType, Meta: NewTags(), Lines: lore}
}

// Type returns the item type.
func (m *Item) Type() string { return m.ItemType }

// HasMeta reports whether Meta is set.
func (m *Item) HasMeta() bool { return m.Meta != nil }

// Tags returns Meta, or nil.
func (m *Item) Tags() ports.TagContainer {
	if m.Meta == nil {
		return nil
	}
	return m.Meta
}

// Lore returns a copy of Lines.
func (m *Item) Lore() []string { return slices.Clone(m.Lines) }

// SetLore replaces Lines.
func (m *Item) SetLore(lines []string) {
	m.SetLoreCount++
	if m.PanicOnSetLore {
		panic("set lore failed")
	}
	if m.Meta == nil {
		m.Meta = NewTags()
	}
	m.Lines = slices.Clone(lines)
}

// ApplyEnchantment writes the level into Meta.
func (m *Item) ApplyEnchantment(key entities.Key, level int) {
	m.ApplyCallCount++
	if m.Meta == nil {
		m.Meta = NewTags()
	}
	codec.WriteLevel(m.Meta, key, level)
}

// RemoveEnchantment removes the level from Meta.
func (m *Item) RemoveEnchantment(key entities.Key) bool {
	m.RemoveCallCount++
	if m.Meta == nil {
		return false
	}
	present := codec.ReadRecord(m.Meta).Has(key)
	codec.WriteLevel(m.Meta, key, 0)
	return present
}

// Enchantments reads the record from Meta.
func (m *Item) Enchantments() []entities.EnchantmentLevel {
	return codec.ReadRecord(m.Tags())
}
