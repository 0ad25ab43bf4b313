package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"aula/internal/infrastructure/config"
	"aula/internal/infrastructure/database"
	"aula/internal/infrastructure/migration"
	"aula/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply the database schema for the configured environment.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Bring the database schema up to date with the registered models.`,
		RunE:  runUp,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log.Infow("running migrations", "environment", env)

	if err := migration.Run(database.Get(), log); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}
