// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"

	"github.com/drachir000/elib/internal/domain/ports"
	"github.com/drachir000/elib/internal/infrastructure/config"
)

// StoreOpener opens the store at a resolved path.
type StoreOpener func(path string) (ports.Store, error)

// InitHandler handles workspace initialization.
type InitHandler struct {
	openStore StoreOpener
}

// NewInitHandler creates a new init handler. openStore may be nil, in which
// case no database is created.
func NewInitHandler(openStore StoreOpener) *InitHandler {
	return &InitHandler{
		openStore: openStore,
	}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath  string
	VanillaPath string
	SQLitePath  string
}

// Handle writes the default config and vanilla definitions, then creates the
// database schema.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("elib already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	result := &InitResult{
		ConfigPath:  config.ConfigFilePath(basePath),
		VanillaPath: cfg.VanillaFilePath(basePath),
		SQLitePath:  cfg.SQLitePath(basePath),
	}

	if h.openStore != nil {
		store, err := h.openStore(result.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("opening store: %w", err)
		}
		defer store.Close()
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}

	return result, nil
}
