package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/drachir000/elib/internal/application/handlers"
	"github.com/drachir000/elib/internal/domain/services"
	"github.com/drachir000/elib/internal/infrastructure/config"
	"github.com/drachir000/elib/internal/infrastructure/host"
	"github.com/drachir000/elib/internal/infrastructure/logging"
	"github.com/drachir000/elib/internal/infrastructure/parsers"
	"github.com/drachir000/elib/internal/infrastructure/store/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config      *config.Config
	Logger      hclog.Logger
	Definitions *handlers.DefinitionHandler
	Items       *handlers.ItemHandler
}

// withDeps loads config, rebuilds the registry from the vanilla definitions
// and the stored custom ones, then calls the provided function. It handles
// cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Logging.Level
	if globalLevel != "" {
		level = globalLevel
	}
	logger := logging.NewLogger("elib", level, os.Stderr)

	store, err := sqlite.NewRepository(cfg.SQLitePath(cwd))
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	// Vanilla definitions are required; without them nothing renders.
	src, err := parsers.LoadFile(cfg.VanillaFilePath(cwd))
	if err != nil {
		return fmt.Errorf("loading vanilla definitions: %w", err)
	}

	prefixes := services.Prefixes{
		Default: cfg.Display.DefaultPrefix,
		Max:     cfg.Display.MaxPrefix,
	}

	registry := services.NewRegistry(host.NewTable(), logger)
	if _, err := registry.LoadVanilla(src, prefixes); err != nil {
		return fmt.Errorf("registering vanilla definitions: %w", err)
	}

	custom := services.NewCustomService(registry, store, logger)
	if _, err := custom.LoadCustom(ctx); err != nil {
		return fmt.Errorf("loading custom definitions: %w", err)
	}

	reconciler := services.NewReconciler(registry, cfg.Display.HideFlags, logger)
	enchantments := services.NewEnchantmentService(registry, reconciler)

	deps := &Deps{
		Config:      cfg,
		Logger:      logger,
		Definitions: handlers.NewDefinitionHandler(registry, custom, prefixes),
		Items:       handlers.NewItemHandler(store, registry, enchantments, logger),
	}

	return fn(deps)
}
