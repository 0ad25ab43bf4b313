// Package config defines the configuration section structs shared by the
// infrastructure config loader and the subsystems it configures.
package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	RefreshExpDays   int    `mapstructure:"refresh_exp_days"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

// BillingConfig configures the payment-provider webhook boundary.
type BillingConfig struct {
	// WebhookSecret is the shared secret used to verify event signatures.
	WebhookSecret string `mapstructure:"webhook_secret"`
	// SignatureToleranceSeconds bounds the accepted clock skew between the
	// provider's signed timestamp and the server clock.
	SignatureToleranceSeconds int `mapstructure:"signature_tolerance_seconds"`
	// EventDedupeTTLHours is how long processed event ids are kept in the
	// redis fast path; the database ledger is authoritative.
	EventDedupeTTLHours int `mapstructure:"event_dedupe_ttl_hours"`
}

// PermissionConfig locates the casbin model used by the policy enforcer.
type PermissionConfig struct {
	ModelPath string `mapstructure:"model_path"`
}

// AccessConfig tunes the role/entitlement resolution pipeline.
type AccessConfig struct {
	// ResolveTimeoutSeconds bounds a single role/entitlement lookup; on
	// timeout resolution falls back to guest.
	ResolveTimeoutSeconds int `mapstructure:"resolve_timeout_seconds"`
	// EntitlementCacheTTLMinutes is the TTL of the cached entitlement flag.
	EntitlementCacheTTLMinutes int `mapstructure:"entitlement_cache_ttl_minutes"`
}
