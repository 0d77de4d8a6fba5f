package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drachir000/elib/internal/application/handlers"
)

func newEnchantCmd() *cobra.Command {
	var noLore bool

	cmd := &cobra.Command{
		Use:   "enchant <id> <key> <level>",
		Short: "Apply an enchantment to an item",
		Long:  "Sets a registered enchantment on an item at the given level and regenerates its lore. Levels are not limited to the definition's range; conflicts are reported but not enforced.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid level %q: %w", args[2], err)
			}
			return withDeps(cmd.Context(), func(d *Deps) error {
				result, err := d.Items.HandleEnchant(cmd.Context(), args[0], args[1], level, !noLore)
				if err != nil {
					return err
				}
				return printResult(result, func(w io.Writer) {
					formatEnchantResult(w, result)
				})
			})
		},
	}

	cmd.Flags().BoolVar(&noLore, "no-lore", false, "Leave the item's lore unchanged")

	return cmd
}

func newDisenchantCmd() *cobra.Command {
	var noLore bool

	cmd := &cobra.Command{
		Use:   "disenchant <id> <key>",
		Short: "Remove an enchantment from an item",
		Long:  "Removes an enchantment from an item. The key does not need to be registered.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				result, err := d.Items.HandleDisenchant(cmd.Context(), args[0], args[1], !noLore)
				if err != nil {
					return err
				}
				return printResult(result, func(w io.Writer) {
					if result.Previous == 0 {
						fmt.Fprintf(w, "%s was not on item %s\n", result.Key, result.Item.ID)
						return
					}
					fmt.Fprintf(w, "Removed %s (was level %d)\n", result.Key, result.Previous)
					formatItem(w, &result.Item)
				})
			})
		},
	}

	cmd.Flags().BoolVar(&noLore, "no-lore", false, "Leave the item's lore unchanged")

	return cmd
}

func newReconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <id>",
		Short: "Regenerate an item's enchantment lore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				view, err := d.Items.HandleReconcile(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printResult(view, func(w io.Writer) {
					formatItem(w, view)
				})
			})
		},
	}
}

func formatEnchantResult(w io.Writer, r *handlers.EnchantResult) {
	if r.Previous > 0 {
		fmt.Fprintf(w, "Set %s to level %d (was %d)\n", r.Key, r.Level, r.Previous)
	} else {
		fmt.Fprintf(w, "Applied %s at level %d\n", r.Key, r.Level)
	}
	if len(r.Conflicts) > 0 {
		fmt.Fprintf(w, "Warning: conflicts with %s\n", strings.Join(r.Conflicts, ", "))
	}
	if !r.Enchantable {
		fmt.Fprintf(w, "Warning: %s is not listed as enchantable with %s\n", r.Item.Type, r.Key)
	}
	formatItem(w, &r.Item)
}
