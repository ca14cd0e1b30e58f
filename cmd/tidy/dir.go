package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidycli/tidy/internal/config"
)

var dirCmd = &cobra.Command{
	Use:   "dir [path]",
	Short: "Show or change the persisted working directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDir,
}

func init() {
	rootCmd.AddCommand(dirCmd)
}

func runDir(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		dir, err := config.LoadWorkdir()
		if errors.Is(err, config.ErrNoWorkdir) {
			fmt.Println("No working directory configured. Set one with: tidy dir <path>")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println(dir)
		return nil
	}

	abs, err := config.SaveWorkdir(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Working directory set to %s\n", abs)
	return nil
}
