package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/drachir000/elib/internal/domain/entities"
	"github.com/drachir000/elib/internal/domain/services"
)

// ErrUnknownDefinition is returned when a key has no registered definition.
var ErrUnknownDefinition = errors.New("no enchantment registered under key")

// DefinitionHandler handles enchantment definition operations.
type DefinitionHandler struct {
	registry *services.Registry
	custom   *services.CustomService
	prefixes services.Prefixes
}

// NewDefinitionHandler creates a new DefinitionHandler. prefixes fill in
// added definitions that don't set their own.
func NewDefinitionHandler(registry *services.Registry, custom *services.CustomService, prefixes services.Prefixes) *DefinitionHandler {
	return &DefinitionHandler{
		registry: registry,
		custom:   custom,
		prefixes: prefixes,
	}
}

// DefinitionView is the presentation form of a definition.
type DefinitionView struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	MinLevel    int      `json:"min_level"`
	MaxLevel    int      `json:"max_level"`
	Target      string   `json:"target"`
	Curse       bool     `json:"curse"`
	Conflicts   []string `json:"conflicts"`
	Enchantable []string `json:"enchantable"`
	Builtin     bool     `json:"builtin"`
	Installed   bool     `json:"installed"`
}

// DefinitionListResult contains the result of listing definitions.
type DefinitionListResult struct {
	Definitions []DefinitionView `json:"definitions"`
	Total       int              `json:"total"`
}

// AddDefinitionRequest describes a custom definition to create.
type AddDefinitionRequest struct {
	Key           string
	Name          string
	DefaultPrefix string
	MaxPrefix     string
	MinLevel      int
	MaxLevel      int
	Target        string
	Curse         bool
	Conflicts     []string
	Enchantable   []string
}

// ConflictResult reports the conflict relation in both directions.
type ConflictResult struct {
	A           string `json:"a"`
	B           string `json:"b"`
	AConflictsB bool   `json:"a_conflicts_with_b"`
	BConflictsA bool   `json:"b_conflicts_with_a"`
}

// HandleList returns every registered definition in registration order.
func (h *DefinitionHandler) HandleList() *DefinitionListResult {
	defs := h.registry.Definitions()
	views := make([]DefinitionView, 0, len(defs))
	for _, d := range defs {
		views = append(views, h.view(d))
	}
	return &DefinitionListResult{
		Definitions: views,
		Total:       len(views),
	}
}

// HandleShow returns the definition registered under key.
func (h *DefinitionHandler) HandleShow(key string) (*DefinitionView, error) {
	def, err := h.lookup(key)
	if err != nil {
		return nil, err
	}
	v := h.view(def)
	return &v, nil
}

// HandleAdd creates, persists and installs a custom definition. Keys without
// a namespace are rejected.
func (h *DefinitionHandler) HandleAdd(ctx context.Context, req AddDefinitionRequest) (*DefinitionView, error) {
	if !strings.Contains(req.Key, ":") {
		return nil, fmt.Errorf("%w: custom keys need a namespace, e.g. myplugin:%s", entities.ErrInvalidKey, req.Key)
	}
	key, err := entities.ParseKey(req.Key)
	if err != nil {
		return nil, err
	}

	p := entities.DefinitionParams{
		Key:           key,
		Name:          strings.TrimSpace(req.Name),
		DefaultPrefix: req.DefaultPrefix,
		MaxPrefix:     req.MaxPrefix,
		MinLevel:      req.MinLevel,
		MaxLevel:      req.MaxLevel,
		Curse:         req.Curse,
		Enchantable:   make([]string, 0, len(req.Enchantable)),
	}
	if p.Name == "" {
		p.Name = services.DisplayNameFromKey(key.Name)
	}
	if p.DefaultPrefix == "" {
		p.DefaultPrefix = h.prefixes.Default
	}
	if p.MaxPrefix == "" {
		p.MaxPrefix = h.prefixes.Max
	}
	if req.Target != "" {
		t, err := entities.ParseTarget(req.Target)
		if err != nil {
			return nil, err
		}
		p.Target = t
	}
	for _, raw := range req.Conflicts {
		k, err := entities.ParseKey(raw)
		if err != nil {
			return nil, fmt.Errorf("conflict %q: %w", raw, err)
		}
		p.Conflicts = append(p.Conflicts, k)
	}
	for _, it := range req.Enchantable {
		if it = strings.ToLower(strings.TrimSpace(it)); it != "" {
			p.Enchantable = append(p.Enchantable, it)
		}
	}

	def := entities.NewDefinition(p)
	if err := h.custom.Add(ctx, def); err != nil {
		return nil, err
	}
	v := h.view(def)
	return &v, nil
}

// HandleRemove deletes a custom definition.
func (h *DefinitionHandler) HandleRemove(ctx context.Context, key string) error {
	k, err := entities.ParseKey(key)
	if err != nil {
		return err
	}
	return h.custom.Remove(ctx, k)
}

// HandleConflicts checks the conflict relation between a and b. Both must be
// registered.
func (h *DefinitionHandler) HandleConflicts(a, b string) (*ConflictResult, error) {
	defA, err := h.lookup(a)
	if err != nil {
		return nil, err
	}
	defB, err := h.lookup(b)
	if err != nil {
		return nil, err
	}
	return &ConflictResult{
		A:           defA.Key().String(),
		B:           defB.Key().String(),
		AConflictsB: h.registry.ConflictsWith(defA, defB.Key()),
		BConflictsA: h.registry.ConflictsWith(defB, defA.Key()),
	}, nil
}

func (h *DefinitionHandler) lookup(raw string) (*entities.Definition, error) {
	key, err := entities.ParseKey(raw)
	if err != nil {
		return nil, err
	}
	def := h.registry.Lookup(key)
	if def == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDefinition, key)
	}
	return def, nil
}

func (h *DefinitionHandler) view(d *entities.Definition) DefinitionView {
	conflicts := make([]string, 0, len(d.Conflicts()))
	for _, k := range d.Conflicts() {
		conflicts = append(conflicts, k.String())
	}
	return DefinitionView{
		Key:         d.Key().String(),
		Name:        d.Name(),
		MinLevel:    d.MinLevel(),
		MaxLevel:    d.MaxLevel(),
		Target:      string(d.Target()),
		Curse:       d.IsCurse(),
		Conflicts:   conflicts,
		Enchantable: append([]string{}, d.Enchantable()...),
		Builtin:     d.Key().Namespace == entities.DefaultNamespace,
		Installed:   h.registry.InstalledOnHost(d.Key()),
	}
}
