package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drachir000/elib/internal/application/handlers"
	"github.com/drachir000/elib/internal/domain/ports"
	"github.com/drachir000/elib/internal/infrastructure/store/sqlite"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new elib workspace",
		Long:  "Creates a .elib directory with default configuration, the vanilla definitions file and the item database.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	handler := handlers.NewInitHandler(func(path string) (ports.Store, error) {
		return sqlite.NewRepository(path)
	})

	result, err := handler.Handle(cmd.Context(), cwd)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", result.ConfigPath)
	fmt.Printf("Vanilla definitions: %s\n", result.VanillaPath)
	fmt.Printf("Database: %s\n", result.SQLitePath)
	fmt.Println("elib initialized successfully!")

	return nil
}
