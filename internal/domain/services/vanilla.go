package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/drachir000/elib/internal/domain/entities"
	"github.com/drachir000/elib/internal/domain/ports"
)

// ErrConfigSourceMissing is returned when vanilla definitions are loaded
// without any configuration source.
var ErrConfigSourceMissing = errors.New("vanilla definitions source is missing")

// Vanilla entry fields.
const (
	fieldName          = "name"
	fieldDefaultPrefix = "default-prefix"
	fieldMaxPrefix     = "max-level-prefix"
	fieldMaxPrefixOld  = "maxLevel-prefix"
	fieldMinLevel      = "min-level"
	fieldMaxLevel      = "max-level"
	fieldTarget        = "enchantment-target"
	fieldCurse         = "curse"
	fieldConflicts     = "conflicts"
	fieldEnchantable   = "enchantable"
)

// Prefixes are the lore prefixes used when a definition doesn't set its own.
type Prefixes struct {
	Default string
	Max     string
}

// DefaultPrefixes returns the stock gray/gold prefixes.
func DefaultPrefixes() Prefixes {
	return Prefixes{Default: entities.DefaultLorePrefix, Max: entities.DefaultMaxLorePrefix}
}

// DisplayNameFromKey turns a key name such as "fire_aspect" into "Fire Aspect".
func DisplayNameFromKey(name string) string {
	// Casers are stateful, so each call gets its own.
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// LoadVanilla registers a definition for every built-in enchantment in the
// host table's default namespace, reading each one's settings from src by key
// name. Entries that are missing or malformed are logged and skipped; the rest
// still load. It returns the number of definitions newly registered.
//
// A nil src is the only fatal case and yields ErrConfigSourceMissing.
func (r *Registry) LoadVanilla(src ports.ConfigSource, prefixes Prefixes) (int, error) {
	if src == nil {
		return 0, ErrConfigSourceMissing
	}

	loaded := 0
	for _, key := range r.builtinKeys() {
		raw, ok := src.Entry(key.Name)
		if !ok || raw == nil {
			r.logger.Warn("skipping vanilla enchantment", "key", key.Name, "reason", "no entry")
			continue
		}
		entry, ok := raw.(map[string]any)
		if !ok {
			r.logger.Warn("skipping vanilla enchantment", "key", key.Name, "reason", "invalid entry")
			continue
		}

		def, err := r.parseVanillaEntry(key, entry, prefixes)
		if err != nil {
			r.logger.Warn("skipping vanilla enchantment", "key", key.Name, "reason", err.Error())
			continue
		}
		if !r.Register(def) {
			r.logger.Debug("vanilla enchantment already registered", "key", key.String())
			continue
		}
		loaded++
	}

	r.logger.Info("loaded vanilla enchantments", "count", loaded)
	return loaded, nil
}

func (r *Registry) builtinKeys() []entities.Key {
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []entities.Key
	if r.table == nil || guard(func() error {
		all = r.table.Keys()
		return nil
	}) != nil {
		all = entities.VanillaKeys()
	}

	keys := make([]entities.Key, 0, len(all))
	for _, k := range all {
		if k.Namespace == entities.DefaultNamespace {
			keys = append(keys, k)
		}
	}
	return keys
}

func (r *Registry) parseVanillaEntry(key entities.Key, entry map[string]any, prefixes Prefixes) (*entities.Definition, error) {
	p := entities.DefinitionParams{
		Key:           key,
		Name:          DisplayNameFromKey(key.Name),
		DefaultPrefix: prefixes.Default,
		MaxPrefix:     prefixes.Max,
		MinLevel:      1,
		MaxLevel:      1,
		Target:        entities.TargetAll,
		Conflicts:     []entities.Key{},
		Enchantable:   []string{},
	}
	warn := func(msg string) {
		r.logger.Warn(msg, "key", key.Name)
	}

	if v, ok := entry[fieldName]; ok && v != nil {
		p.Name = fmt.Sprint(v)
	}
	if v, ok := entry[fieldDefaultPrefix]; ok && v != nil {
		p.DefaultPrefix = fmt.Sprint(v)
	}
	if v, ok := entry[fieldMaxPrefix]; ok && v != nil {
		p.MaxPrefix = fmt.Sprint(v)
	} else if v, ok := entry[fieldMaxPrefixOld]; ok && v != nil {
		p.MaxPrefix = fmt.Sprint(v)
	}

	if v, ok := entry[fieldMinLevel]; ok && v != nil {
		n, ok := levelValue(v)
		if !ok {
			return nil, fmt.Errorf("invalid %s %v", fieldMinLevel, v)
		}
		p.MinLevel = n
	}
	if v, ok := entry[fieldMaxLevel]; ok && v != nil {
		n, ok := levelValue(v)
		if !ok {
			return nil, fmt.Errorf("invalid %s %v", fieldMaxLevel, v)
		}
		p.MaxLevel = n
	}

	if v, ok := entry[fieldTarget]; ok && v != nil {
		t, err := entities.ParseTarget(fmt.Sprint(v))
		if err != nil {
			return nil, err
		}
		p.Target = t
	} else {
		warn("no enchantment-target, using ALL")
	}

	if v, ok := entry[fieldCurse]; ok && v != nil {
		if b, ok := v.(bool); ok {
			p.Curse = b
		} else {
			warn("invalid curse, using false")
		}
	} else {
		warn("no curse, using false")
	}

	if v, ok := entry[fieldConflicts]; ok && v != nil {
		list, ok := v.([]any)
		if !ok {
			warn("invalid conflicts, using none")
		}
		for _, e := range list {
			k, err := entities.ParseKey(fmt.Sprint(e))
			if err != nil {
				r.logger.Warn("dropping invalid conflict", "key", key.Name, "conflict", e)
				continue
			}
			p.Conflicts = append(p.Conflicts, k)
		}
	} else {
		warn("no conflicts, using none")
	}

	if v, ok := entry[fieldEnchantable]; ok && v != nil {
		list, ok := v.([]any)
		if !ok {
			warn("invalid enchantable, using none")
		}
		for _, e := range list {
			s, ok := e.(string)
			if !ok || strings.TrimSpace(s) == "" {
				r.logger.Warn("dropping invalid enchantable item type", "key", key.Name, "item_type", e)
				continue
			}
			p.Enchantable = append(p.Enchantable, strings.ToLower(strings.TrimSpace(s)))
		}
	} else {
		warn("no enchantable, using none")
	}

	return entities.NewDefinition(p), nil
}

// levelValue reads a numeric config value as a level clamped to
// [1, entities.MaxStoredLevel]. Fractions are truncated.
func levelValue(v any) (int, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	if f < 1 {
		return 1, true
	}
	if f > entities.MaxStoredLevel {
		return entities.MaxStoredLevel, true
	}
	return int(f), true
}
