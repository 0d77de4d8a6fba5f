// Package services contains the enchantment registry, the lore reconciler and
// the item-level accessors built on top of them.
package services

import (
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/drachir000/elib/internal/domain/entities"
	"github.com/drachir000/elib/internal/domain/ports"
)

// Registry holds the known enchantment definitions and mediates their
// installation into the host's global enchantment table.
//
// Definitions are stored by pointer, in registration order. One mutex guards
// both the definition list and every call into the host table, so the
// open/insert/close gate sequence is never interleaved with another caller.
type Registry struct {
	mu     sync.Mutex
	defs   []*entities.Definition
	table  ports.EnchantmentTable
	logger hclog.Logger
}

// NewRegistry creates an empty Registry bound to the host table. table may be
// nil, in which case host installation always reports failure.
func NewRegistry(table ports.EnchantmentTable, logger hclog.Logger) *Registry {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Registry{
		table:  table,
		logger: logger.Named("registry"),
	}
}

// Register adds def. It returns false if def is nil or a definition with the
// same key is already registered.
func (r *Registry) Register(def *entities.Definition) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registerLocked(def)
}

func (r *Registry) registerLocked(def *entities.Definition) bool {
	if def == nil {
		return false
	}
	if r.indexLocked(def.Key()) >= 0 {
		return false
	}
	r.defs = append(r.defs, def)
	return true
}

// Unregister removes the definition with def's key. Items carrying the
// enchantment keep it; it just stops showing up in generated lore.
func (r *Registry) Unregister(def *entities.Definition) bool {
	if def == nil {
		return false
	}
	return r.UnregisterKey(def.Key())
}

// UnregisterKey removes the definition registered under key.
func (r *Registry) UnregisterKey(key entities.Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unregisterLocked(key)
}

func (r *Registry) unregisterLocked(key entities.Key) bool {
	i := r.indexLocked(key)
	if i < 0 {
		return false
	}
	r.defs = append(r.defs[:i], r.defs[i+1:]...)
	return true
}

// IsRegistered reports whether a definition is registered under key.
func (r *Registry) IsRegistered(key entities.Key) bool {
	return r.Lookup(key) != nil
}

// IsRegisteredString is IsRegistered for a raw "namespace:name" string.
// Unparsable input is reported as not registered.
func (r *Registry) IsRegisteredString(raw string) bool {
	return r.LookupString(raw) != nil
}

// Lookup returns the definition registered under key, or nil.
func (r *Registry) Lookup(key entities.Key) *entities.Definition {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexLocked(key); i >= 0 {
		return r.defs[i]
	}
	return nil
}

// LookupString is Lookup for a raw "namespace:name" string. Unparsable input
// yields nil.
func (r *Registry) LookupString(raw string) *entities.Definition {
	key, err := entities.ParseKey(raw)
	if err != nil {
		return nil
	}
	return r.Lookup(key)
}

// Definitions returns the registered definitions in registration order. The
// slice is a copy; the definitions are shared.
func (r *Registry) Definitions() []*entities.Definition {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entities.Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.defs)
}

// ConflictsWith reports whether b is in a's conflict set. It is directional;
// check both ways for a symmetric answer.
func (r *Registry) ConflictsWith(a *entities.Definition, b entities.Key) bool {
	if a == nil {
		return false
	}
	return a.ConflictsWith(b)
}

// ConflictsByKey is ConflictsWith with a looked up by key. An unregistered a
// conflicts with nothing.
func (r *Registry) ConflictsByKey(a, b entities.Key) bool {
	return r.ConflictsWith(r.Lookup(a), b)
}

// InstallToHost puts def into the host table, optionally registering it here
// first. It returns true if def is in the host table afterwards. Failures
// from the host (gate denied, duplicate name, a panicking adapter) are logged
// and reported as false.
func (r *Registry) InstallToHost(def *entities.Definition, alsoRegister bool) bool {
	if def == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if alsoRegister {
		r.registerLocked(def)
	}
	if r.table == nil {
		r.logger.Warn("no host table configured", "key", def.Key().String())
		return false
	}

	key := def.Key()
	var installed bool
	err := guard(func() error {
		if r.table.Contains(key) {
			installed = true
			return nil
		}
		if err := r.table.OpenForInsertion(); err != nil {
			return fmt.Errorf("opening host table: %w", err)
		}
		defer r.table.CloseForInsertion()
		if err := r.table.Insert(key, def.Name()); err != nil {
			return fmt.Errorf("inserting into host table: %w", err)
		}
		installed = true
		return nil
	})
	if err != nil {
		r.logger.Warn("host install failed", "key", key.String(), "error", err)
		return false
	}
	r.logger.Debug("installed to host", "key", key.String())
	return installed
}

// InstallKeyToHost installs the definition registered under key.
func (r *Registry) InstallKeyToHost(key entities.Key) bool {
	return r.InstallToHost(r.Lookup(key), false)
}

// UninstallFromHost removes def from the host table, optionally unregistering
// it here too. It returns true if def is absent from the host table
// afterwards; a definition that was never installed counts as success.
func (r *Registry) UninstallFromHost(def *entities.Definition, alsoUnregister bool) bool {
	if def == nil {
		return false
	}
	return r.UninstallKeyFromHost(def.Key(), alsoUnregister)
}

// UninstallKeyFromHost is UninstallFromHost by key. The key does not need to
// be registered here.
func (r *Registry) UninstallKeyFromHost(key entities.Key, alsoUnregister bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.table == nil {
		r.logger.Warn("no host table configured", "key", key.String())
		return false
	}

	err := guard(func() error {
		if !r.table.Contains(key) {
			return nil
		}
		if err := r.table.RemoveIndexes(key); err != nil {
			return fmt.Errorf("removing host indexes: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Warn("host uninstall failed", "key", key.String(), "error", err)
		return false
	}

	if alsoUnregister {
		r.unregisterLocked(key)
	}
	r.logger.Debug("uninstalled from host", "key", key.String())
	return true
}

// InstalledOnHost reports whether key is present in the host table.
func (r *Registry) InstalledOnHost(key entities.Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.table == nil {
		return false
	}
	var ok bool
	if err := guard(func() error {
		ok = r.table.Contains(key)
		return nil
	}); err != nil {
		return false
	}
	return ok
}

func (r *Registry) indexLocked(key entities.Key) int {
	for i, d := range r.defs {
		if d.Key() == key {
			return i
		}
	}
	return -1
}

// guard runs fn, turning a panic inside a host adapter into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("host adapter panic: %v", p)
		}
	}()
	return fn()
}
