package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "aula/internal/shared/config"
)

type Config struct {
	Server     sharedConfig.ServerConfig     `mapstructure:"server"`
	Database   sharedConfig.DatabaseConfig   `mapstructure:"database"`
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	Auth       sharedConfig.AuthConfig       `mapstructure:"auth"`
	Email      sharedConfig.EmailConfig      `mapstructure:"email"`
	Redis      sharedConfig.RedisConfig      `mapstructure:"redis"`
	Billing    sharedConfig.BillingConfig    `mapstructure:"billing"`
	Access     sharedConfig.AccessConfig     `mapstructure:"access"`
	Permission sharedConfig.PermissionConfig `mapstructure:"permission"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("AULA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "http://localhost:8080")
	viper.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "aula_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	viper.SetDefault("auth.password.bcrypt_cost", 12)
	viper.SetDefault("auth.jwt.secret", "change-me-in-production")
	viper.SetDefault("auth.jwt.access_exp_minutes", 15)
	viper.SetDefault("auth.jwt.refresh_exp_days", 7)

	// Email defaults
	viper.SetDefault("email.enabled", false)
	viper.SetDefault("email.smtp_host", "localhost")
	viper.SetDefault("email.smtp_port", 1025)
	viper.SetDefault("email.smtp_user", "")
	viper.SetDefault("email.smtp_password", "")
	viper.SetDefault("email.from_address", "noreply@aula.local")
	viper.SetDefault("email.from_name", "Aula")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Billing defaults
	viper.SetDefault("billing.webhook_secret", "change-me-in-production")
	viper.SetDefault("billing.signature_tolerance_seconds", 300)
	viper.SetDefault("billing.event_dedupe_ttl_hours", 24)

	// Access defaults
	viper.SetDefault("access.resolve_timeout_seconds", 3)
	viper.SetDefault("access.entitlement_cache_ttl_minutes", 5)

	// Permission defaults
	viper.SetDefault("permission.model_path", "./configs/rbac_model.conf")
}
