package ports

import "github.com/drachir000/elib/internal/domain/entities"

// Item is the host's representation of a single item stack.
type Item interface {
	// Type returns the host item type, e.g. "diamond_sword".
	Type() string

	// HasMeta reports whether the item carries a metadata container.
	HasMeta() bool

	// Tags returns the item's persistent tag container, or nil when HasMeta
	// is false.
	Tags() TagContainer

	// Lore returns a copy of the item's description lines.
	Lore() []string

	// SetLore replaces the description lines, creating metadata if needed.
	SetLore(lines []string)

	// ApplyEnchantment sets the host enchantment for key at level, creating
	// metadata if needed. Levels are not validated against any definition.
	ApplyEnchantment(key entities.Key, level int)

	// RemoveEnchantment removes the host enchantment for key and reports
	// whether it was present.
	RemoveEnchantment(key entities.Key) bool

	// Enchantments lists the enchantments the host sees on the item, in the
	// order they were applied.
	Enchantments() []entities.EnchantmentLevel
}
