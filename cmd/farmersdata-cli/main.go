// Package main is the entry point for the farmersdata-cli application.
// It initializes the root command and registers the folder and item
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/Fransisiw/DA-Dolores-FarmersData/cmd/farmersdata-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "farmersdata-cli",
		Short: "FarmersData administration CLI",
		Long: `farmersdata-cli is a command-line client for the FarmersData REST API.
It manages folders and the items listed inside them, and runs substring
searches across item fields.

The API endpoint defaults to http://localhost:8080 and can be overridden
with the --api-url flag on every command.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitFolderCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize folder commands: %w", err)
	}

	if err := commands.InitItemCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize item commands: %w", err)
	}

	return nil
}
