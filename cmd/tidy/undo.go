package main

import (
	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo [dir]",
	Short: "Undo the most recent sort",
	Long: `Moves every file the last 'tidy sort' relocated back to its original
path, removes category folders the undo emptied, and discards the undo
ledger. Only the most recent sort is undoable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUndo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

func runUndo(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	dir, err := resolveDir(args)
	if err != nil {
		return err
	}
	return a.undoDir(dir, nil)
}
