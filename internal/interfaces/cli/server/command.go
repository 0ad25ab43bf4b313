package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"aula/internal/infrastructure/config"
	"aula/internal/infrastructure/database"
	"aula/internal/infrastructure/migration"
	"aula/internal/infrastructure/scheduler"
	httprouter "aula/internal/interfaces/http"
	"aula/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Aula HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
		DebugMode:  cfg.Server.Mode == gin.DebugMode,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration enabled in production")
		}
		if err := migration.Run(database.Get(), log); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	container, err := httprouter.NewContainer(cfg, database.Get(), redisClient, log)
	if err != nil {
		return fmt.Errorf("failed to wire application: %w", err)
	}
	if err := container.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	defer func() {
		if err := container.Stop(); err != nil {
			log.Errorw("failed to stop event dispatcher", "error", err)
		}
	}()

	sched, err := scheduler.NewManager(log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := sched.RegisterEntitlementSweep(container.EntitlementSweep(), 15*time.Minute); err != nil {
		return fmt.Errorf("failed to register entitlement sweep: %w", err)
	}
	sched.Start()
	defer func() {
		if err := sched.Stop(); err != nil {
			log.Errorw("failed to stop scheduler", "error", err)
		}
	}()

	engine := httprouter.NewRouter(container)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
