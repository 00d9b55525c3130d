package main

import (
	"os"

	"github.com/spf13/cobra"

	"casefile/internal/interfaces/cli/migrate"
	"casefile/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "casefile",
		Short: "Casefile - complaint case filing service",
		Long:  `Casefile is a complaint case filing service with account management, owner-scoped case tracking, and attachment storage.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
