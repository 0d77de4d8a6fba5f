// Package host provides an in-process model of the game host: item stacks with
// lore and tag metadata, and the process-wide enchantment table.
package host

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/drachir000/elib/internal/domain/codec"
	"github.com/drachir000/elib/internal/domain/entities"
	"github.com/drachir000/elib/internal/domain/ports"
	"github.com/drachir000/elib/internal/infrastructure/nbt"
)

// Item is a host item stack. A freshly created item has no metadata; the
// first lore or enchantment write creates it.
type Item struct {
	id        string
	itemType  string
	amount    int
	lore      []string
	meta      *nbt.Compound
	createdAt time.Time
}

var _ ports.Item = (*Item)(nil)

// NewItem creates an item of the given type with no metadata.
func NewItem(id, itemType string, amount int) *Item {
	if amount < 1 {
		amount = 1
	}
	return &Item{id: id, itemType: itemType, amount: amount}
}

// ID returns the item's storage identifier.
func (i *Item) ID() string { return i.id }

// Type returns the item type.
func (i *Item) Type() string { return i.itemType }

// Amount returns the stack size.
func (i *Item) Amount() int { return i.amount }

// CreatedAt returns when the item was first stored, or the zero time.
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// HasMeta reports whether the item has a metadata container.
func (i *Item) HasMeta() bool { return i.meta != nil }

// Tags returns the metadata container, or nil without metadata.
func (i *Item) Tags() ports.TagContainer {
	if i.meta == nil {
		return nil
	}
	return i.meta
}

// Compound returns the metadata container as its concrete type.
func (i *Item) Compound() *nbt.Compound { return i.meta }

// EnsureMeta creates the metadata container if the item has none.
func (i *Item) EnsureMeta() ports.TagContainer {
	if i.meta == nil {
		i.meta = nbt.New()
	}
	return i.meta
}

// Lore returns a copy of the description lines.
func (i *Item) Lore() []string {
	return slices.Clone(i.lore)
}

// SetLore replaces the description lines.
func (i *Item) SetLore(lines []string) {
	i.EnsureMeta()
	i.lore = slices.Clone(lines)
}

// ApplyEnchantment sets the enchantment level, uncapped by any definition.
func (i *Item) ApplyEnchantment(key entities.Key, level int) {
	codec.WriteLevel(i.EnsureMeta(), key, level)
}

// RemoveEnchantment removes the enchantment and reports whether it was present.
func (i *Item) RemoveEnchantment(key entities.Key) bool {
	if i.meta == nil {
		return false
	}
	present := codec.ReadRecord(i.meta).Has(key)
	codec.WriteLevel(i.meta, key, 0)
	return present
}

// Enchantments lists the applied enchantments in stored order.
func (i *Item) Enchantments() []entities.EnchantmentLevel {
	return codec.ReadRecord(i.Tags())
}

// ToStored converts the item into its persisted form.
func (i *Item) ToStored() (*entities.StoredItem, error) {
	stored := &entities.StoredItem{
		ID:        i.id,
		Type:      i.itemType,
		Amount:    i.amount,
		Lore:      i.Lore(),
		CreatedAt: i.createdAt,
	}
	if stored.Lore == nil {
		stored.Lore = []string{}
	}
	if i.meta != nil {
		data, err := json.Marshal(i.meta)
		if err != nil {
			return nil, fmt.Errorf("encoding item tags: %w", err)
		}
		stored.Tags = data
	}
	return stored, nil
}

// FromStored rebuilds an item from its persisted form. Tags that fail to
// decode are dropped and the item is treated as having no metadata beyond
// its lore.
func FromStored(s *entities.StoredItem) *Item {
	item := NewItem(s.ID, s.Type, s.Amount)
	item.createdAt = s.CreatedAt
	if len(s.Tags) > 0 {
		if meta, err := nbt.Parse(s.Tags); err == nil {
			item.meta = meta
		}
	}
	if len(s.Lore) > 0 {
		item.SetLore(s.Lore)
	}
	return item
}
