package main

import (
	"fmt"
	"os"

	"algo-notes-be/internal/bootstrap"
	"algo-notes-be/internal/config"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notectl",
	Short: "Inspect and feed the algorithm notes store from the terminal",
	Long: `notectl talks to the same store as the REST server (selected by DB_DRIVER)
and lets you list, add, import and export study notes.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openContainer() (*bootstrap.Container, error) {
	cfg := config.Load()
	container, err := bootstrap.NewContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("error initializing store: %w", err)
	}
	return container, nil
}

func init() {
	rootCmd.AddCommand(listCmd, addCmd, importCmd, exportCmd, watchCmd)
}
