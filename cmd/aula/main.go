package main

import (
	"os"

	"github.com/spf13/cobra"

	"aula/internal/interfaces/cli/migrate"
	"aula/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aula",
		Short: "Aula - e-learning platform backend",
		Long:  `Aula serves the learning platform API with role-aware access control, subscription entitlements and billing webhook processing.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
