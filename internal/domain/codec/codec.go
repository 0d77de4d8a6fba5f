// Package codec reads and writes enchantment data on an item's tag container.
//
// Two namespaces are involved. The host-native enchantment list lives at the
// top level under EnchantmentsKey as a list of {id, lvl} compounds; this is
// the authoritative record. The engine's own bookkeeping lives in the
// EngineNamespace compound and is not meant to be read by anything else.
//
// Every reader degrades malformed data to "absent": an entry with an
// unparsable id or a non-numeric level is skipped, never reported as an error.
package codec

import (
	"github.com/drachir000/elib/internal/domain/entities"
	"github.com/drachir000/elib/internal/domain/ports"
)

// Host-native layout.
const (
	EnchantmentsKey = "Enchantments"
	HideFlagsKey    = "HideFlags"

	idKey    = "id"
	levelKey = "lvl"
)

// Engine-owned layout.
const (
	EngineNamespace = "elib"

	markerLinesKey = "lore-lines"
	separatorKey   = "lore-separator"
)

// Record is the authoritative list of enchantments on an item, in stored order.
type Record []entities.EnchantmentLevel

// Level returns the stored level for key, or 0 if absent.
func (r Record) Level(key entities.Key) int {
	for _, e := range r {
		if e.Key == key {
			return e.Level
		}
	}
	return 0
}

// Has reports whether key has a positive level in the record.
func (r Record) Has(key entities.Key) bool {
	return r.Level(key) > 0
}

// ReadRecord returns the enchantments stored in tags. A nil container, a
// missing list or a list of the wrong shape all yield an empty record. When
// the same key appears twice only the first entry counts.
func ReadRecord(tags ports.TagContainer) Record {
	if tags == nil {
		return Record{}
	}

	entries := tags.GetCompoundList(EnchantmentsKey)
	record := make(Record, 0, len(entries))
	seen := make(map[entities.Key]bool, len(entries))
	for _, entry := range entries {
		key, level, ok := readEntry(entry)
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		record = append(record, entities.EnchantmentLevel{Key: key, Level: level})
	}
	return record
}

func readEntry(entry ports.TagContainer) (entities.Key, int, bool) {
	raw, ok := entry.GetString(idKey)
	if !ok {
		return entities.Key{}, 0, false
	}
	key, err := entities.ParseKey(raw)
	if err != nil {
		return entities.Key{}, 0, false
	}
	level, ok := entry.GetInt(levelKey)
	if !ok || level < 1 {
		return entities.Key{}, 0, false
	}
	return key, level, true
}

// WriteLevel stores level for key. A level below 1 removes the entry (a no-op
// if it is absent); anything else inserts or overwrites it, clamped to
// entities.MaxStoredLevel. Duplicate entries for key are collapsed. It does
// nothing when tags is nil.
func WriteLevel(tags ports.TagContainer, key entities.Key, level int) {
	if tags == nil {
		return
	}
	if level > entities.MaxStoredLevel {
		level = entities.MaxStoredLevel
	}

	entries := tags.GetCompoundList(EnchantmentsKey)
	var matches []int
	for i, entry := range entries {
		raw, ok := entry.GetString(idKey)
		if !ok {
			continue
		}
		if k, err := entities.ParseKey(raw); err == nil && k == key {
			matches = append(matches, i)
		}
	}

	if level >= 1 {
		if len(matches) == 0 {
			entry := tags.AddCompound(EnchantmentsKey)
			entry.SetString(idKey, key.String())
			entry.SetInt(levelKey, level)
			return
		}
		entries[matches[0]].SetInt(levelKey, level)
		matches = matches[1:]
	}

	// Remove from the back so earlier indexes stay valid.
	for i := len(matches) - 1; i >= 0; i-- {
		tags.RemoveCompound(EnchantmentsKey, matches[i])
	}
}

// ReadMarkerLines returns the lore lines the engine last generated, without
// duplicates, in the order they were written.
func ReadMarkerLines(tags ports.TagContainer) []string {
	ns, ok := engineNamespace(tags)
	if !ok {
		return nil
	}
	return dedupe(ns.GetStringList(markerLinesKey))
}

// WriteMarkerLines replaces the engine's marker lines. Writing an empty set to
// an item that never had one leaves the container untouched.
func WriteMarkerLines(tags ports.TagContainer, lines []string) {
	if tags == nil {
		return
	}
	lines = dedupe(lines)
	if len(lines) == 0 {
		if ns, ok := engineNamespace(tags); ok {
			ns.Remove(markerLinesKey)
		}
		return
	}
	tags.GetOrCreateCompound(EngineNamespace).SetStringList(markerLinesKey, lines)
}

// ReadSeparator reports whether the engine wrote a blank separator line after
// its generated lines on the last pass.
func ReadSeparator(tags ports.TagContainer) bool {
	ns, ok := engineNamespace(tags)
	if !ok {
		return false
	}
	v, _ := ns.GetBool(separatorKey)
	return v
}

// WriteSeparator records whether a separator line was written.
func WriteSeparator(tags ports.TagContainer, written bool) {
	if tags == nil {
		return
	}
	if !written {
		if ns, ok := engineNamespace(tags); ok {
			ns.Remove(separatorKey)
		}
		return
	}
	tags.GetOrCreateCompound(EngineNamespace).SetBool(separatorKey, true)
}

// HideFlags marks the item so the host does not render its own enchantment list.
func HideFlags(tags ports.TagContainer) {
	if tags == nil {
		return
	}
	tags.SetBool(HideFlagsKey, true)
}

func engineNamespace(tags ports.TagContainer) (ports.TagContainer, bool) {
	if tags == nil {
		return nil, false
	}
	return tags.GetCompound(EngineNamespace)
}

func dedupe(lines []string) []string {
	if lines == nil {
		return nil
	}
	seen := make(map[string]bool, len(lines))
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
