package entities

import "slices"

// Default lore prefixes (legacy color codes: reset + gray, reset + gold).
const (
	DefaultLorePrefix    = "§r§7"
	DefaultMaxLorePrefix = "§r§6"
)

// MaxStoredLevel is the highest level the host can store on an item. The host
// keeps levels as signed 16-bit values.
const MaxStoredLevel = 32767

// DefinitionParams holds the inputs for NewDefinition.
type DefinitionParams struct {
	Key           Key
	Name          string
	DefaultPrefix string
	MaxPrefix     string
	MinLevel      int
	MaxLevel      int
	Target        Target
	Curse         bool
	Conflicts     []Key
	Enchantable   []string
}

// Definition describes one enchantment's display and applicability rules.
//
// Definitions are shared by pointer: the Registry holds the same value the
// caller registered, so changes made through the setters are visible to every
// holder right away. Setters never touch items that already carry the
// enchantment; an item keeps its stored level even if it now falls outside
// [MinLevel, MaxLevel].
//
// A Definition is not safe for concurrent mutation.
type Definition struct {
	key           Key
	name          string
	defaultPrefix string
	maxPrefix     string
	minLevel      int
	maxLevel      int
	target        Target
	curse         bool
	conflicts     []Key
	enchantable   []string
}

// NewDefinition creates a Definition. Levels are clamped so that
// 1 <= MinLevel <= MaxLevel; an empty Target becomes TargetAll.
func NewDefinition(p DefinitionParams) *Definition {
	d := &Definition{
		key:           p.Key,
		name:          p.Name,
		defaultPrefix: p.DefaultPrefix,
		maxPrefix:     p.MaxPrefix,
		target:        p.Target,
		curse:         p.Curse,
		conflicts:     p.Conflicts,
		enchantable:   p.Enchantable,
	}
	if d.target == "" {
		d.target = TargetAll
	}
	if d.conflicts == nil {
		d.conflicts = []Key{}
	}
	if d.enchantable == nil {
		d.enchantable = []string{}
	}

	d.minLevel, d.maxLevel = clampLevels(p.MinLevel, p.MaxLevel)
	return d
}

func clampLevels(minLevel, maxLevel int) (int, int) {
	if minLevel < 1 {
		minLevel = 1
	}
	if maxLevel < 1 {
		maxLevel = 1
	}
	if minLevel > maxLevel {
		minLevel = maxLevel
	}
	return minLevel, maxLevel
}

// Key returns the enchantment's identifier.
func (d *Definition) Key() Key { return d.key }

// Name returns the display name shown in item lore.
func (d *Definition) Name() string { return d.name }

// SetName changes the display name. Item lore picks it up on the next reconciliation.
func (d *Definition) SetName(name string) { d.name = name }

// DefaultPrefix returns the prefix used below the maximum level.
func (d *Definition) DefaultPrefix() string { return d.defaultPrefix }

// SetDefaultPrefix changes the prefix used below the maximum level.
func (d *Definition) SetDefaultPrefix(prefix string) { d.defaultPrefix = prefix }

// MaxPrefix returns the prefix used at or above the maximum level.
func (d *Definition) MaxPrefix() string { return d.maxPrefix }

// SetMaxPrefix changes the prefix used at or above the maximum level.
func (d *Definition) SetMaxPrefix(prefix string) { d.maxPrefix = prefix }

// MinLevel returns the lowest intended level.
func (d *Definition) MinLevel() int { return d.minLevel }

// SetMinLevel sets the lowest intended level, clamped to [1, MaxLevel].
func (d *Definition) SetMinLevel(level int) {
	if level < 1 {
		level = 1
	}
	if level > d.maxLevel {
		level = d.maxLevel
	}
	d.minLevel = level
}

// MaxLevel returns the highest intended level.
func (d *Definition) MaxLevel() int { return d.maxLevel }

// SetMaxLevel sets the highest intended level, clamped to at least max(1, MinLevel).
func (d *Definition) SetMaxLevel(level int) {
	if level < 1 {
		level = 1
	}
	if level < d.minLevel {
		level = d.minLevel
	}
	d.maxLevel = level
}

// Target returns the advisory item category.
func (d *Definition) Target() Target { return d.target }

// SetTarget changes the advisory item category.
func (d *Definition) SetTarget(t Target) { d.target = t }

// IsCurse reports whether the enchantment is a curse. This does not change
// lore formatting; use the prefixes for that.
func (d *Definition) IsCurse() bool { return d.curse }

// SetCurse marks the enchantment as a curse or not.
func (d *Definition) SetCurse(curse bool) { d.curse = curse }

// Conflicts returns the keys this enchantment refuses to coexist with.
// The returned slice is shared with the Definition.
func (d *Definition) Conflicts() []Key { return d.conflicts }

// SetConflicts replaces the conflict set. Items already carrying conflicting
// enchantments are left as they are.
func (d *Definition) SetConflicts(conflicts []Key) {
	if conflicts == nil {
		conflicts = []Key{}
	}
	d.conflicts = conflicts
}

// ConflictsWith reports whether other is in this Definition's conflict set.
// The check is directional: a.ConflictsWith(b) says nothing about b.ConflictsWith(a).
func (d *Definition) ConflictsWith(other Key) bool {
	return slices.Contains(d.conflicts, other)
}

// ConflictsWithAny reports whether any of keys is in the conflict set.
func (d *Definition) ConflictsWithAny(keys ...Key) bool {
	for _, k := range keys {
		if d.ConflictsWith(k) {
			return true
		}
	}
	return false
}

// Enchantable returns the item types this enchantment may be applied to.
// The returned slice is shared with the Definition.
func (d *Definition) Enchantable() []string { return d.enchantable }

// SetEnchantable replaces the enchantable item types.
func (d *Definition) SetEnchantable(itemTypes []string) {
	if itemTypes == nil {
		itemTypes = []string{}
	}
	d.enchantable = itemTypes
}

// CanEnchant reports whether itemType is in the enchantable set. Conflicts
// with enchantments already on an item are not considered.
func (d *Definition) CanEnchant(itemType string) bool {
	return slices.Contains(d.enchantable, itemType)
}

// PrefixFor returns the lore prefix for level: MaxPrefix at or above MaxLevel,
// DefaultPrefix otherwise.
func (d *Definition) PrefixFor(level int) string {
	if level >= d.maxLevel {
		return d.maxPrefix
	}
	return d.defaultPrefix
}
