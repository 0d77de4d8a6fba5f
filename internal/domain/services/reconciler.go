package services

import (
	"github.com/hashicorp/go-hclog"

	"github.com/drachir000/elib/internal/domain/codec"
	"github.com/drachir000/elib/internal/domain/ports"
)

// separatorLine sits between generated lines and user lore.
const separatorLine = ""

// Reconciler keeps an item's lore in step with its enchantments.
//
// Lines the Reconciler writes are recorded in the item's marker set. On the
// next pass exactly those lines (and the separator it wrote after them) are
// removed and regenerated; every other line is user content and is kept in
// place, in order.
type Reconciler struct {
	registry  *Registry
	hideFlags bool
	logger    hclog.Logger
}

// NewReconciler creates a Reconciler. With hideFlags set, every reconciled
// item is also flagged so the host hides its own enchantment list.
func NewReconciler(registry *Registry, hideFlags bool, logger hclog.Logger) *Reconciler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Reconciler{
		registry:  registry,
		hideFlags: hideFlags,
		logger:    logger.Named("reconciler"),
	}
}

// Lines returns the lore lines for the item's registered enchantments, in
// record order. Orphaned entries (no registered definition) produce nothing.
func (r *Reconciler) Lines(record codec.Record) []string {
	lines := make([]string, 0, len(record))
	for _, e := range record {
		if e.Level < 1 {
			continue
		}
		def := r.registry.Lookup(e.Key)
		if def == nil {
			continue
		}
		lines = append(lines, def.PrefixFor(e.Level)+def.Name()+" "+Numeral(e.Level))
	}
	return lines
}

// UpdateDescription regenerates the item's enchantment lore. Items without
// metadata are left alone. It never panics; a failing host item is logged.
func (r *Reconciler) UpdateDescription(item ports.Item) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("lore reconciliation aborted", "panic", p)
		}
	}()

	if item == nil || !item.HasMeta() {
		return
	}
	tags := item.Tags()
	if tags == nil {
		return
	}

	generated := r.Lines(codec.ReadRecord(tags))
	previous := codec.ReadMarkerLines(tags)
	kept := stripOwned(item.Lore(), previous, codec.ReadSeparator(tags))

	lore := make([]string, 0, len(generated)+1+len(kept))
	lore = append(lore, generated...)
	if len(generated) > 0 {
		lore = append(lore, separatorLine)
	}
	lore = append(lore, kept...)

	item.SetLore(lore)
	codec.WriteMarkerLines(tags, generated)
	codec.WriteSeparator(tags, len(generated) > 0)
	if r.hideFlags {
		codec.HideFlags(tags)
	}

	r.logger.Trace("reconciled lore", "generated", len(generated), "user_lines", len(kept))
}

// stripOwned drops every line in owned. When hadSeparator is set, the first
// blank line directly following an owned line is dropped too; any other blank
// line belongs to the user.
func stripOwned(lore, owned []string, hadSeparator bool) []string {
	ownedSet := make(map[string]bool, len(owned))
	for _, l := range owned {
		ownedSet[l] = true
	}

	kept := make([]string, 0, len(lore))
	afterOwned := false
	separatorDropped := !hadSeparator
	for _, line := range lore {
		if ownedSet[line] {
			afterOwned = true
			continue
		}
		if afterOwned && !separatorDropped && line == separatorLine {
			separatorDropped = true
			afterOwned = false
			continue
		}
		afterOwned = false
		kept = append(kept, line)
	}
	return kept
}
