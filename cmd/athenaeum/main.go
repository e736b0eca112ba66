package main

import (
	"os"

	"github.com/spf13/cobra"

	"athenaeum/internal/interfaces/cli/migrate"
	"athenaeum/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "athenaeum",
		Short: "Athenaeum - library lending service",
		Long:  `Athenaeum is a library management service covering the catalog, reader carts, and the loan lifecycle.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
