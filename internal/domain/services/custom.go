package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/drachir000/elib/internal/domain/entities"
	"github.com/drachir000/elib/internal/domain/ports"
)

var (
	// ErrBuiltinKey is returned when a custom definition would shadow or
	// remove a built-in host enchantment.
	ErrBuiltinKey = errors.New("key belongs to a built-in enchantment")

	// ErrAlreadyRegistered is returned when adding a definition whose key is
	// already registered.
	ErrAlreadyRegistered = errors.New("definition already registered")

	// ErrDefinitionNotFound is returned when removing an unknown custom definition.
	ErrDefinitionNotFound = errors.New("custom definition not found")

	// ErrInstallFailed is returned when the host table refused a definition.
	ErrInstallFailed = errors.New("host table rejected definition")
)

// CustomService manages persisted custom definitions: the ones that live
// outside the built-in namespace and are re-registered on every start.
type CustomService struct {
	registry *Registry
	store    ports.Store
	logger   hclog.Logger
}

// NewCustomService creates a new CustomService.
func NewCustomService(registry *Registry, store ports.Store, logger hclog.Logger) *CustomService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &CustomService{
		registry: registry,
		store:    store,
		logger:   logger.Named("custom"),
	}
}

// LoadCustom registers and installs every stored custom definition. A
// definition the host refuses stays registered locally and is logged. It
// returns the number of definitions installed.
func (s *CustomService) LoadCustom(ctx context.Context) (int, error) {
	defs, err := s.store.ListDefinitions(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing custom definitions: %w", err)
	}

	installed := 0
	for _, def := range defs {
		if !s.registry.InstallToHost(def, true) {
			s.logger.Warn("custom definition not installed", "key", def.Key().String())
			continue
		}
		installed++
	}
	s.logger.Info("loaded custom enchantments", "count", installed, "stored", len(defs))
	return installed, nil
}

// Add persists def, registers it and installs it into the host table.
func (s *CustomService) Add(ctx context.Context, def *entities.Definition) error {
	if def == nil {
		return errors.New("definition is nil")
	}
	key := def.Key()
	if key.Namespace == entities.DefaultNamespace {
		return fmt.Errorf("%s: %w", key, ErrBuiltinKey)
	}
	if s.registry.IsRegistered(key) {
		return fmt.Errorf("%s: %w", key, ErrAlreadyRegistered)
	}

	if err := s.store.SaveDefinition(ctx, def); err != nil {
		return fmt.Errorf("saving definition: %w", err)
	}
	if !s.registry.InstallToHost(def, true) {
		return fmt.Errorf("%s: %w", key, ErrInstallFailed)
	}
	return nil
}

// Remove uninstalls, unregisters and deletes the custom definition under key.
// Items already carrying the enchantment keep it as an orphan.
func (s *CustomService) Remove(ctx context.Context, key entities.Key) error {
	if key.Namespace == entities.DefaultNamespace {
		return fmt.Errorf("%s: %w", key, ErrBuiltinKey)
	}

	stored, err := s.store.ListDefinitions(ctx)
	if err != nil {
		return fmt.Errorf("listing custom definitions: %w", err)
	}
	found := false
	for _, d := range stored {
		if d.Key() == key {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%s: %w", key, ErrDefinitionNotFound)
	}

	if !s.registry.UninstallKeyFromHost(key, true) {
		s.logger.Warn("custom definition still on host", "key", key.String())
		s.registry.UnregisterKey(key)
	}
	if err := s.store.DeleteDefinition(ctx, key); err != nil {
		return fmt.Errorf("deleting definition: %w", err)
	}
	return nil
}

// List returns the stored custom definitions.
func (s *CustomService) List(ctx context.Context) ([]*entities.Definition, error) {
	return s.store.ListDefinitions(ctx)
}
