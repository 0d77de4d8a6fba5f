package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/drachir000/elib/internal/application/handlers"
	"github.com/drachir000/elib/internal/domain/entities"
)

// formatCode starts a two-character host formatting code such as "§7".
const formatCode = '§'

func isJSON() bool {
	return globalFormat == "json"
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResult writes v as JSON or falls back to the text printer.
func printResult(v any, text func(io.Writer)) error {
	if isJSON() {
		return writeJSON(os.Stdout, v)
	}
	text(os.Stdout)
	return nil
}

// stripFormatting removes "§x" codes so lore reads cleanly in a terminal.
func stripFormatting(s string) string {
	var b strings.Builder
	skip := false
	for _, r := range s {
		if skip {
			skip = false
			continue
		}
		if r == formatCode {
			skip = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func formatDefinitions(w io.Writer, defs []handlers.DefinitionView) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tNAME\tLEVELS\tTARGET\tCURSE\tINSTALLED")
	for i := range defs {
		d := &defs[i]
		fmt.Fprintf(tw, "%s\t%s\t%d-%d\t%s\t%s\t%s\n",
			d.Key, d.Name, d.MinLevel, d.MaxLevel, d.Target, yesNo(d.Curse), yesNo(d.Installed))
	}
	tw.Flush()
}

func formatDefinition(w io.Writer, d *handlers.DefinitionView) {
	fmt.Fprintf(w, "Key:         %s\n", d.Key)
	fmt.Fprintf(w, "Name:        %s\n", d.Name)
	fmt.Fprintf(w, "Levels:      %d-%d\n", d.MinLevel, d.MaxLevel)
	fmt.Fprintf(w, "Target:      %s\n", d.Target)
	fmt.Fprintf(w, "Curse:       %s\n", yesNo(d.Curse))
	fmt.Fprintf(w, "Builtin:     %s\n", yesNo(d.Builtin))
	fmt.Fprintf(w, "Installed:   %s\n", yesNo(d.Installed))
	if len(d.Conflicts) > 0 {
		fmt.Fprintf(w, "Conflicts:   %s\n", strings.Join(d.Conflicts, ", "))
	}
	if len(d.Enchantable) > 0 {
		fmt.Fprintf(w, "Enchantable: %s\n", strings.Join(d.Enchantable, ", "))
	}
}

func formatItems(w io.Writer, items []handlers.ItemView) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tAMOUNT\tENCHANTMENTS\tCREATED")
	for i := range items {
		it := &items[i]
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
			it.ID, it.Type, it.Amount, len(it.Enchantments), it.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	tw.Flush()
}

func formatItem(w io.Writer, item *handlers.ItemView) {
	fmt.Fprintf(w, "ID:      %s\n", item.ID)
	fmt.Fprintf(w, "Type:    %s x%d\n", item.Type, item.Amount)
	if len(item.Enchantments) > 0 {
		fmt.Fprintln(w, "Enchantments:")
		for _, e := range item.Enchantments {
			if e.Registered {
				fmt.Fprintf(w, "  %s %d (%s)\n", e.Key, e.Level, e.Name)
			} else {
				fmt.Fprintf(w, "  %s %d (unregistered)\n", e.Key, e.Level)
			}
		}
	}
	if len(item.Lore) > 0 {
		fmt.Fprintln(w, "Lore:")
		for _, line := range item.Lore {
			fmt.Fprintf(w, "  | %s\n", stripFormatting(line))
		}
	}
}

func formatHistory(w io.Writer, entries []entities.AuditEntry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tACTION\tDETAILS")
	for i := range entries {
		e := &entries[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Action, formatDetails(e.Details))
	}
	tw.Flush()
}

func formatDetails(details map[string]any) string {
	if len(details) == 0 {
		return "-"
	}
	data, err := json.Marshal(details)
	if err != nil {
		return "-"
	}
	return string(data)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
