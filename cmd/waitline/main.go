package main

import (
	"os"

	"github.com/spf13/cobra"

	"waitline/internal/interfaces/cli/migrate"
	"waitline/internal/interfaces/cli/queue"
	"waitline/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "waitline",
		Short: "Waitline - a queue ticketing service",
		Long:  `Waitline issues, serves, and completes numbered queue tickets for regular and priority service classes, with per-user isolated queues.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		queue.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
