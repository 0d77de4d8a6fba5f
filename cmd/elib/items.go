package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newItemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage stored items",
		Long:  "Create, list, show, or delete items, edit their lore and view their history.",
	}

	cmd.AddCommand(newItemsCreateCmd())
	cmd.AddCommand(newItemsListCmd())
	cmd.AddCommand(newItemsShowCmd())
	cmd.AddCommand(newItemsDeleteCmd())
	cmd.AddCommand(newItemsLoreCmd())
	cmd.AddCommand(newItemsHistoryCmd())

	return cmd
}

func newItemsCreateCmd() *cobra.Command {
	var amount int

	cmd := &cobra.Command{
		Use:   "create <type>",
		Short: "Create an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				view, err := d.Items.HandleCreate(cmd.Context(), args[0], amount)
				if err != nil {
					return fmt.Errorf("creating item: %w", err)
				}
				return printResult(view, func(w io.Writer) {
					fmt.Fprintf(w, "Created item: %s\n", view.ID)
				})
			})
		},
	}

	cmd.Flags().IntVarP(&amount, "amount", "a", 1, "Stack size")

	return cmd
}

func newItemsListCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				result, err := d.Items.HandleList(cmd.Context(), limit, offset)
				if err != nil {
					return err
				}
				return printResult(result, func(w io.Writer) {
					if result.Total == 0 {
						fmt.Fprintln(w, "No items found.")
						return
					}
					formatItems(w, result.Items)
				})
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultListLimit, "Maximum number of items to display")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of items to skip")

	return cmd
}

func newItemsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an item with its enchantments and lore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				view, err := d.Items.HandleShow(cmd.Context(), args[0])
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

func newItemsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				if err := d.Items.HandleDelete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Printf("Deleted item: %s\n", args[0])
				return nil
			})
		},
	}
}

func newItemsLoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lore <id> <line>",
		Short: "Append a line to an item's lore",
		Long:  "Appends a user lore line. Lines added this way are kept when enchantment lore is regenerated.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				view, err := d.Items.HandleAddLore(cmd.Context(), args[0], args[1])
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

func newItemsHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "Show the audit log for an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				entries, err := d.Items.HandleHistory(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printResult(entries, func(w io.Writer) {
					if len(entries) == 0 {
						fmt.Fprintln(w, "No history.")
						return
					}
					formatHistory(w, entries)
				})
			})
		},
	}
}
