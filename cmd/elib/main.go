// Package main provides the entry point for the elib CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version      = "0.1.0-dev"
	globalFormat string
	globalLevel  string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "elib",
		Short:   "Custom enchantments with self-maintaining item lore",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !contains(validFormats, globalFormat) {
				return fmt.Errorf("invalid format %q, valid formats: %v", globalFormat, validFormats)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&globalFormat, "format", "f", "text", "Output format (text, json)")
	rootCmd.PersistentFlags().StringVar(&globalLevel, "log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(
		newInitCmd(),
		newDefinitionsCmd(),
		newConflictsCmd(),
		newItemsCmd(),
		newEnchantCmd(),
		newDisenchantCmd(),
		newReconcileCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
