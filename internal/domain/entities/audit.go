package entities

import "time"

// Item audit actions.
const (
	ActionCreate     = "create"
	ActionDelete     = "delete"
	ActionEnchant    = "enchant"
	ActionDisenchant = "disenchant"
	ActionReconcile  = "reconcile"
	ActionLore       = "lore"
)

// AuditEntry represents a logged action on an item.
type AuditEntry struct {
	ID        int64          `json:"id"`
	Action    string         `json:"action"`
	ItemID    string         `json:"item_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
