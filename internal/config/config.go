package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the social service.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Upstream UpstreamConfig
	Auth     AuthConfig
	Cache    CacheConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"0"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// DatabaseConfig holds PostgreSQL configuration.
type DatabaseConfig struct {
	Host            string        `env:"DATABASE_HOST" envDefault:"localhost"`
	Port            int           `env:"DATABASE_PORT" envDefault:"5432"`
	User            string        `env:"DATABASE_USER" envDefault:"riftbook"`
	Password        string        `env:"DATABASE_PASSWORD" envDefault:"riftbook"`
	Database        string        `env:"DATABASE_NAME" envDefault:"riftbook_social"`
	SSLMode         string        `env:"DATABASE_SSL_MODE" envDefault:"disable"`
	MaxConns        int           `env:"DATABASE_MAX_CONNS" envDefault:"25"`
	MinConns        int           `env:"DATABASE_MIN_CONNS" envDefault:"5"`
	MaxConnLifetime time.Duration `env:"DATABASE_MAX_CONN_LIFETIME" envDefault:"1h"`
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Host         string        `env:"REDIS_HOST" envDefault:"localhost"`
	Port         int           `env:"REDIS_PORT" envDefault:"6379"`
	Password     string        `env:"REDIS_PASSWORD" envDefault:""`
	DB           int           `env:"REDIS_DB" envDefault:"0"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL           string        `env:"NATS_URL" envDefault:"nats://localhost:4222"`
	SubjectPrefix string        `env:"NATS_SUBJECT_PREFIX" envDefault:"riftbook"`
	MaxReconnects int           `env:"NATS_MAX_RECONNECTS" envDefault:"10"`
	ReconnectWait time.Duration `env:"NATS_RECONNECT_WAIT" envDefault:"2s"`
}

// UpstreamConfig holds the game-data provider settings.
type UpstreamConfig struct {
	BaseURL string        `env:"UPSTREAM_BASE_URL" envDefault:"https://%s.api.riotgames.com"`
	APIKey  string        `env:"UPSTREAM_API_KEY,required"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
}

// AuthConfig holds JWT verification configuration.
type AuthConfig struct {
	Issuer     string `env:"AUTH_ISSUER" envDefault:"riftbook"`
	Audience   string `env:"AUTH_AUDIENCE" envDefault:"riftbook-social"`
	SigningKey string `env:"AUTH_SIGNING_KEY,required"`
}

// CacheConfig holds the freshness windows per resource kind. Cooldown
// windows must stay strictly below their staleness windows, which the
// freshness service enforces at construction.
type CacheConfig struct {
	ProfileStaleness   time.Duration `env:"CACHE_PROFILE_STALENESS" envDefault:"5m"`
	ProfileCooldown    time.Duration `env:"CACHE_PROFILE_COOLDOWN" envDefault:"30s"`
	MasteryStaleness   time.Duration `env:"CACHE_MASTERY_STALENESS" envDefault:"10m"`
	MasteryCooldown    time.Duration `env:"CACHE_MASTERY_COOLDOWN" envDefault:"60s"`
	MatchListStaleness time.Duration `env:"CACHE_MATCHLIST_STALENESS" envDefault:"15m"`
	MatchListCooldown  time.Duration `env:"CACHE_MATCHLIST_COOLDOWN" envDefault:"60s"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "SOCIAL_"}); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Address returns the HTTP server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// Address returns the Redis address.
func (c *RedisConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
