package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tidycli/tidy/internal/ledger"
)

var statusCmd = &cobra.Command{
	Use:   "status [dir]",
	Short: "Show the working directory and whether a sort can be undone",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	dir, err := resolveDir(args)
	if err != nil {
		return err
	}

	fmt.Printf("Working directory: %s\n", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}
	pending := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			pending++
		}
	}
	fmt.Printf("Files awaiting sort: %d\n", pending)

	// Status is read-only: never create the state folder just to report
	// that it is empty.
	if !ledger.Recorded(dir) {
		fmt.Println("Undoable sort: none")
		return nil
	}

	db, err := ledger.Open(dir)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	run, err := ledger.NewStore(db).Latest(dir)
	if errors.Is(err, ledger.ErrNotFound) {
		fmt.Println("Undoable sort: none")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Undoable sort: %d move(s) recorded at %s\n",
		len(run.Records), run.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}
