package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "tidy",
	Short: "Sort a folder's files into category subfolders, undoably",
	Long: `tidy - folder organizer

Sorts the files of a configured folder into Images, Videos, Music,
Documents, Programs, Archives and Others, and can undo the most recent
sort exactly. Run with no arguments for the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd.Context())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to settings file (default: discovered)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("tidy {{.Version}}\n")
}
