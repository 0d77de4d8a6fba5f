package entities

import (
	"encoding/json"
	"time"
)

// StoredItem is the persisted form of a host item.
type StoredItem struct {
	ID     string   `json:"id"`
	Type   string   `json:"type"`
	Amount int      `json:"amount"`
	Lore   []string `json:"lore"`
	// Tags is the item's tag container as a JSON document, or nil when the
	// item has no metadata.
	Tags      json.RawMessage `json:"tags,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// EnchantmentLevel pairs a key with the level stored on an item.
type EnchantmentLevel struct {
	Key   Key `json:"key"`
	Level int `json:"level"`
}
