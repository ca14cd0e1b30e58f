package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/tidycli/tidy/internal/classify"
	"github.com/tidycli/tidy/internal/organize"
)

func printSortResult(w io.Writer, res *organize.Result) {
	if res.Failed > 0 {
		fmt.Fprintf(w, "%d file(s) failed to move:\n", res.Failed)
		for _, out := range res.Outcomes {
			if out.Err != nil {
				fmt.Fprintf(w, "  - %s: %v\n", out.Name, out.Err)
			}
		}
	}

	fmt.Fprintln(w, renderCategoryCounts(res.ByCategory))
	fmt.Fprintf(w, "%d files moved.\n", res.Moved)
}

func printUndoResult(w io.Writer, res *organize.UndoResult) {
	fmt.Fprintf(w, "Undo complete! %d files restored.\n", res.Restored)
	if res.Skipped > 0 {
		fmt.Fprintf(w, "%d record(s) skipped (destination missing or original path occupied).\n", res.Skipped)
	}
	if res.Failed > 0 {
		fmt.Fprintf(w, "%d restore(s) failed; see the session log.\n", res.Failed)
	}
	if len(res.Pruned) > 0 {
		fmt.Fprintf(w, "Removed empty folders: %s\n", strings.Join(res.Pruned, ", "))
	}
}

// renderCategoryCounts shows the per-category totals, as a rounded table
// on a terminal and as plain columns otherwise.
func renderCategoryCounts(counts map[classify.Category]int) string {
	if !stdoutIsTerminal() {
		var b strings.Builder
		for _, cat := range classify.All {
			fmt.Fprintf(&b, "%-10s %d\n", cat, counts[cat])
		}
		return strings.TrimRight(b.String(), "\n")
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Category", "Moved"})
	for _, cat := range classify.All {
		tw.AppendRow(table.Row{string(cat), counts[cat]})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
