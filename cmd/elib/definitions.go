package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/drachir000/elib/internal/application/handlers"
)

func newDefinitionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "definitions",
		Aliases: []string{"defs"},
		Short:   "Manage enchantment definitions",
		Long:    "List, show, add, or remove enchantment definitions. Vanilla definitions come from the vanilla file; custom ones are stored in the database.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDefinitionsList(cmd)
		},
	}

	cmd.AddCommand(newDefinitionsListCmd())
	cmd.AddCommand(newDefinitionsShowCmd())
	cmd.AddCommand(newDefinitionsAddCmd())
	cmd.AddCommand(newDefinitionsRemoveCmd())

	return cmd
}

func newDefinitionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registered definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDefinitionsList(cmd)
		},
	}
}

func runDefinitionsList(cmd *cobra.Command) error {
	return withDeps(cmd.Context(), func(d *Deps) error {
		result := d.Definitions.HandleList()
		return printResult(result, func(w io.Writer) {
			if result.Total == 0 {
				fmt.Fprintln(w, "No definitions registered.")
				return
			}
			formatDefinitions(w, result.Definitions)
		})
	})
}

func newDefinitionsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <key>",
		Short: "Show details about a definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				view, err := d.Definitions.HandleShow(args[0])
				if err != nil {
					return err
				}
				return printResult(view, func(w io.Writer) {
					formatDefinition(w, view)
				})
			})
		},
	}
}

func newDefinitionsAddCmd() *cobra.Command {
	var req handlers.AddDefinitionRequest

	cmd := &cobra.Command{
		Use:   "add <namespace:name>",
		Short: "Add a custom definition",
		Long:  "Adds a custom enchantment definition, stores it and installs it into the enchantment table.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Key = args[0]
			return runDefinitionsAdd(cmd, req)
		},
	}

	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "Display name (default: derived from the key)")
	cmd.Flags().StringVar(&req.DefaultPrefix, "prefix", "", "Lore prefix below the max level")
	cmd.Flags().StringVar(&req.MaxPrefix, "max-prefix", "", "Lore prefix at the max level")
	cmd.Flags().IntVar(&req.MinLevel, "min-level", 1, "Minimum level")
	cmd.Flags().IntVar(&req.MaxLevel, "max-level", 1, "Maximum level")
	cmd.Flags().StringVarP(&req.Target, "target", "t", "", "Enchantment target (default: ALL)")
	cmd.Flags().BoolVar(&req.Curse, "curse", false, "Mark as a curse")
	cmd.Flags().StringSliceVar(&req.Conflicts, "conflicts", nil, "Conflicting enchantment keys")
	cmd.Flags().StringSliceVar(&req.Enchantable, "enchantable", nil, "Item types this can be applied to")

	return cmd
}

func runDefinitionsAdd(cmd *cobra.Command, req handlers.AddDefinitionRequest) error {
	return withDeps(cmd.Context(), func(d *Deps) error {
		view, err := d.Definitions.HandleAdd(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("adding definition: %w", err)
		}
		return printResult(view, func(w io.Writer) {
			fmt.Fprintf(w, "Added definition: %s (%s)\n", view.Key, view.Name)
		})
	})
}

func newDefinitionsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <namespace:name>",
		Short: "Remove a custom definition",
		Long:  "Removes a custom definition. Items keep the enchantment but it no longer shows in their lore. Vanilla definitions cannot be removed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				if err := d.Definitions.HandleRemove(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("removing definition: %w", err)
				}
				fmt.Printf("Removed definition: %s\n", args[0])
				return nil
			})
		},
	}
}

func newConflictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts <a> <b>",
		Short: "Check whether two enchantments conflict",
		Long:  "Conflicts are directional; both directions are reported.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				result, err := d.Definitions.HandleConflicts(args[0], args[1])
				if err != nil {
					return err
				}
				return printResult(result, func(w io.Writer) {
					fmt.Fprintf(w, "%s conflicts with %s: %s\n", result.A, result.B, yesNo(result.AConflictsB))
					fmt.Fprintf(w, "%s conflicts with %s: %s\n", result.B, result.A, yesNo(result.BConflictsA))
				})
			})
		},
	}
}
