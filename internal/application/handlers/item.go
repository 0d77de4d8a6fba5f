package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/drachir000/elib/internal/domain/entities"
	"github.com/drachir000/elib/internal/domain/ports"
	"github.com/drachir000/elib/internal/domain/services"
	"github.com/drachir000/elib/internal/infrastructure/host"
)

var (
	// ErrItemNotFound is returned when no stored item has the given ID.
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidLevel is returned for enchant requests below level 1.
	ErrInvalidLevel = errors.New("level must be at least 1")
)

// ItemHandler handles item operations: storage, enchanting and lore.
type ItemHandler struct {
	store        ports.Store
	registry     *services.Registry
	enchantments *services.EnchantmentService
	logger       hclog.Logger
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(store ports.Store, registry *services.Registry, enchantments *services.EnchantmentService, logger hclog.Logger) *ItemHandler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ItemHandler{
		store:        store,
		registry:     registry,
		enchantments: enchantments,
		logger:       logger.Named("items"),
	}
}

// EnchantmentView is one enchantment stored on an item.
type EnchantmentView struct {
	Key        string `json:"key"`
	Name       string `json:"name,omitempty"`
	Level      int    `json:"level"`
	Registered bool   `json:"registered"`
}

// ItemView is the presentation form of an item.
type ItemView struct {
	ID           string            `json:"id"`
	Type         string            `json:"type"`
	Amount       int               `json:"amount"`
	Lore         []string          `json:"lore"`
	Enchantments []EnchantmentView `json:"enchantments"`
	CreatedAt    time.Time         `json:"created_at"`
}

// ItemListResult contains the result of listing items.
type ItemListResult struct {
	Items []ItemView `json:"items"`
	Total int        `json:"total"`
}

// EnchantResult contains the outcome of an enchant or disenchant.
type EnchantResult struct {
	Item     ItemView `json:"item"`
	Key      string   `json:"key"`
	Previous int      `json:"previous"`
	Level    int      `json:"level"`
	// Conflicts lists registered enchantments already on the item that
	// conflict with the new one in either direction. They are not removed.
	Conflicts []string `json:"conflicts,omitempty"`
	// Enchantable is false when the definition doesn't list the item type.
	Enchantable bool `json:"enchantable"`
}

// HandleCreate stores a new item without metadata.
func (h *ItemHandler) HandleCreate(ctx context.Context, itemType string, amount int) (*ItemView, error) {
	itemType = strings.ToLower(strings.TrimSpace(itemType))
	if itemType == "" {
		return nil, errors.New("item type is required")
	}

	item := host.NewItem(uuid.NewString(), itemType, amount)
	stored, err := h.save(ctx, item)
	if err != nil {
		return nil, err
	}
	h.audit(ctx, entities.ActionCreate, stored.ID, map[string]any{"type": itemType, "amount": stored.Amount})

	v := h.view(host.FromStored(stored))
	return &v, nil
}

// HandleList returns stored items with pagination.
func (h *ItemHandler) HandleList(ctx context.Context, limit, offset int) (*ItemListResult, error) {
	stored, err := h.store.ListItems(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	views := make([]ItemView, 0, len(stored))
	for _, s := range stored {
		views = append(views, h.view(host.FromStored(s)))
	}
	return &ItemListResult{
		Items: views,
		Total: len(views),
	}, nil
}

// HandleShow returns a single item.
func (h *ItemHandler) HandleShow(ctx context.Context, id string) (*ItemView, error) {
	item, err := h.load(ctx, id)
	if err != nil {
		return nil, err
	}
	v := h.view(item)
	return &v, nil
}

// HandleDelete removes an item.
func (h *ItemHandler) HandleDelete(ctx context.Context, id string) error {
	if _, err := h.load(ctx, id); err != nil {
		return err
	}
	if err := h.store.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	h.audit(ctx, entities.ActionDelete, id, nil)
	return nil
}

// HandleAddLore appends a user line to the item's lore.
func (h *ItemHandler) HandleAddLore(ctx context.Context, id, line string) (*ItemView, error) {
	item, err := h.load(ctx, id)
	if err != nil {
		return nil, err
	}
	item.SetLore(append(item.Lore(), line))
	if _, err := h.save(ctx, item); err != nil {
		return nil, err
	}
	h.audit(ctx, entities.ActionLore, id, map[string]any{"line": line})

	v := h.view(item)
	return &v, nil
}

// HandleEnchant sets key on the item at level. The key must be registered.
// Conflicts and enchantability are reported, not enforced.
func (h *ItemHandler) HandleEnchant(ctx context.Context, id, key string, level int, updateLore bool) (*EnchantResult, error) {
	if level < 1 {
		return nil, ErrInvalidLevel
	}
	k, err := entities.ParseKey(key)
	if err != nil {
		return nil, err
	}
	def := h.registry.Lookup(k)
	if def == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDefinition, k)
	}
	item, err := h.load(ctx, id)
	if err != nil {
		return nil, err
	}

	var conflicts []string
	for _, existing := range h.enchantments.Enchantments(item) {
		other := existing.Definition.Key()
		if other == k {
			continue
		}
		if def.ConflictsWith(other) || existing.Definition.ConflictsWith(k) {
			conflicts = append(conflicts, other.String())
		}
	}

	previous := h.enchantments.SetLevel(item, k, level, updateLore)
	if _, err := h.save(ctx, item); err != nil {
		return nil, err
	}
	h.audit(ctx, entities.ActionEnchant, id, map[string]any{"key": k.String(), "level": level, "previous": previous})
	if len(conflicts) > 0 {
		h.logger.Info("enchantment conflicts with existing ones", "item", id, "key", k.String(), "conflicts", conflicts)
	}

	return &EnchantResult{
		Item:        h.view(item),
		Key:         k.String(),
		Previous:    previous,
		Level:       h.enchantments.Level(item, k),
		Conflicts:   conflicts,
		Enchantable: def.CanEnchant(item.Type()),
	}, nil
}

// HandleDisenchant removes key from the item. Unregistered keys can be
// removed too.
func (h *ItemHandler) HandleDisenchant(ctx context.Context, id, key string, updateLore bool) (*EnchantResult, error) {
	k, err := entities.ParseKey(key)
	if err != nil {
		return nil, err
	}
	item, err := h.load(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := h.enchantments.Remove(item, k, updateLore)
	if previous > 0 {
		if _, err := h.save(ctx, item); err != nil {
			return nil, err
		}
		h.audit(ctx, entities.ActionDisenchant, id, map[string]any{"key": k.String(), "previous": previous})
	}

	return &EnchantResult{
		Item:     h.view(item),
		Key:      k.String(),
		Previous: previous,
	}, nil
}

// HandleReconcile regenerates the item's enchantment lore.
func (h *ItemHandler) HandleReconcile(ctx context.Context, id string) (*ItemView, error) {
	item, err := h.load(ctx, id)
	if err != nil {
		return nil, err
	}
	h.enchantments.UpdateDescription(item)
	if _, err := h.save(ctx, item); err != nil {
		return nil, err
	}
	h.audit(ctx, entities.ActionReconcile, id, nil)

	v := h.view(item)
	return &v, nil
}

// HandleHistory returns the item's audit log, newest first.
func (h *ItemHandler) HandleHistory(ctx context.Context, id string) ([]entities.AuditEntry, error) {
	entries, err := h.store.FindAuditLog(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}
	return entries, nil
}

func (h *ItemHandler) load(ctx context.Context, id string) (*host.Item, error) {
	stored, err := h.store.FindItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding item: %w", err)
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return host.FromStored(stored), nil
}

func (h *ItemHandler) save(ctx context.Context, item *host.Item) (*entities.StoredItem, error) {
	stored, err := item.ToStored()
	if err != nil {
		return nil, err
	}
	if err := h.store.SaveItem(ctx, stored); err != nil {
		return nil, fmt.Errorf("saving item: %w", err)
	}
	return stored, nil
}

// audit records an action. Failures are only logged.
func (h *ItemHandler) audit(ctx context.Context, action, id string, details map[string]any) {
	if err := h.store.LogAction(ctx, action, id, details); err != nil {
		h.logger.Warn("audit log write failed", "action", action, "item", id, "error", err)
	}
}

func (h *ItemHandler) view(item *host.Item) ItemView {
	lore := item.Lore()
	if lore == nil {
		lore = []string{}
	}
	record := item.Enchantments()
	enchants := make([]EnchantmentView, 0, len(record))
	for _, e := range record {
		ev := EnchantmentView{Key: e.Key.String(), Level: e.Level}
		if def := h.registry.Lookup(e.Key); def != nil {
			ev.Name = def.Name()
			ev.Registered = true
		}
		enchants = append(enchants, ev)
	}
	return ItemView{
		ID:           item.ID(),
		Type:         item.Type(),
		Amount:       item.Amount(),
		Lore:         lore,
		Enchantments: enchants,
		CreatedAt:    item.CreatedAt(),
	}
}
