package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tidycli/tidy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Settings management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate the settings file",
	Long:  "Validates settings syntax, log level and category overrides without touching any files.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default settings file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing settings file")
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		path = found
	}

	fmt.Printf("Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Println("Validation errors:")
		for _, e := range errs {
			fmt.Printf("  - %s\n", e)
		}
		return fmt.Errorf("settings invalid")
	}

	fmt.Printf("  Log level:  %s\n", cfg.LogLevel)
	fmt.Printf("  Overrides:  %d extension(s)\n", len(cfg.Categories))
	fmt.Println("\nSettings valid!")
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
