package main

import (
	"os"

	"github.com/spf13/cobra"

	"bureau/internal/interfaces/cli/migrate"
	"bureau/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bureau",
		Short: "Bureau - project management and billing backend",
		Long:  `Bureau runs the kanban, time tracking, quoting, invoicing and lead intake backend, with built-in migration tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
