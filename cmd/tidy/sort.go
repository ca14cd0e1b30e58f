package main

import (
	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort [dir]",
	Short: "Sort the working directory's files into category folders",
	Long: `Sorts every file directly inside the working directory into its
category subfolder and records the moves so they can be undone with
'tidy undo'. Subdirectories are left alone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSort,
}

func init() {
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	dir, err := resolveDir(args)
	if err != nil {
		return err
	}
	return a.sortDir(dir, nil)
}
