package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	DocStore DocStoreConfig `mapstructure:"docstore"`
	Credits  CreditsConfig  `mapstructure:"credits"`
	Anchor   AnchorConfig   `mapstructure:"anchor"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// LedgerConfig configures the external ledger gateway client. The gateway
// holds the single shared signing identity; this service only talks to it.
type LedgerConfig struct {
	BaseURL            string        `mapstructure:"base_url"`
	ServiceTokenSecret string        `mapstructure:"service_token_secret"` // HS256 secret for gateway auth
	ServiceTokenIssuer string        `mapstructure:"service_token_issuer"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"`
	SubmitMaxAttempts  int           `mapstructure:"submit_max_attempts"`
	ConfirmMaxAttempts int           `mapstructure:"confirm_max_attempts"`
	BackoffBase        time.Duration `mapstructure:"backoff_base"`
	BackoffMax         time.Duration `mapstructure:"backoff_max"`
}

type DocStoreConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type CreditsConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// AnchorConfig tunes the anchoring coordinator.
type AnchorConfig struct {
	QueueSize       int           `mapstructure:"queue_size"`
	WatchdogTimeout time.Duration `mapstructure:"watchdog_timeout"`
	LockTTL         time.Duration `mapstructure:"lock_ttl"`
	RootCacheTTL    time.Duration `mapstructure:"root_cache_ttl"`
}

// PipelineConfig tunes batch processing.
type PipelineConfig struct {
	HashWorkers int `mapstructure:"hash_workers"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: XTQ_.
// Nested keys use underscore: XTQ_DATABASE_HOST, XTQ_LEDGER_BASE_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "xertiq")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("ledger.base_url", "http://localhost:9090")
	v.SetDefault("ledger.service_token_secret", "")
	v.SetDefault("ledger.service_token_issuer", "xertiq-anchor-engine")
	v.SetDefault("ledger.request_timeout", "15s")
	v.SetDefault("ledger.submit_max_attempts", 5)
	v.SetDefault("ledger.confirm_max_attempts", 10)
	v.SetDefault("ledger.backoff_base", "2s")
	v.SetDefault("ledger.backoff_max", "1m")
	v.SetDefault("docstore.base_url", "http://localhost:9091")
	v.SetDefault("docstore.request_timeout", "30s")
	v.SetDefault("credits.base_url", "http://localhost:9092")
	v.SetDefault("credits.request_timeout", "10s")
	v.SetDefault("anchor.queue_size", 64)
	v.SetDefault("anchor.watchdog_timeout", "10m")
	v.SetDefault("anchor.lock_ttl", "10m")
	v.SetDefault("anchor.root_cache_ttl", "24h")
	v.SetDefault("pipeline.hash_workers", 8)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: XTQ_LEDGER_BASE_URL -> ledger.base_url
	v.SetEnvPrefix("XTQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
