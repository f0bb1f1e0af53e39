package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Log        LogConfig        `mapstructure:"log"`
	Commission CommissionConfig `mapstructure:"commission"`
	Reconcile  ReconcileConfig  `mapstructure:"reconcile"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type ServerConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Mode      string `mapstructure:"mode"` // debug, release, test
	RateLimit bool   `mapstructure:"rate_limit"`
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

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// CommissionConfig controls rate fallback and ledger policy.
type CommissionConfig struct {
	// DefaultRates maps order type -> category -> percent, used when no
	// commission_rules row matches.
	DefaultRates      map[string]map[string]float64 `mapstructure:"default_rates"`
	StrictRollback    bool                          `mapstructure:"strict_rollback"`
	RuleCacheTTL      time.Duration                 `mapstructure:"rule_cache_ttl"`
	AcceptanceLockTTL time.Duration                 `mapstructure:"acceptance_lock_ttl"`
}

// DefaultRate returns the configured fallback rate for an order type and category.
func (c CommissionConfig) DefaultRate(orderType, category string) (decimal.Decimal, bool) {
	byCategory, ok := c.DefaultRates[strings.ToLower(orderType)]
	if !ok {
		return decimal.Zero, false
	}
	rate, ok := byCategory[strings.ToLower(category)]
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(rate), true
}

type ReconcileConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	LockTTL  time.Duration `mapstructure:"lock_ttl"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PCL_ (Partner Commission Ledger).
// Nested keys use underscore: PCL_DATABASE_HOST, PCL_COMMISSION_STRICT_ROLLBACK, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.rate_limit", true)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "commission_ledger")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("commission.default_rates", map[string]interface{}{
		"buy":  map[string]interface{}{"mobile": 5.0, "tablet": 5.0, "laptop": 4.0, "accessories": 8.0},
		"sell": map[string]interface{}{"mobile": 3.0, "tablet": 3.0, "laptop": 2.5, "accessories": 5.0},
	})
	v.SetDefault("commission.strict_rollback", false)
	v.SetDefault("commission.rule_cache_ttl", "10m")
	v.SetDefault("commission.acceptance_lock_ttl", "30s")
	v.SetDefault("reconcile.interval", "15m")
	v.SetDefault("reconcile.lock_ttl", "10m")
	v.SetDefault("metrics.enabled", true)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PCL_DATABASE_HOST -> database.host
	v.SetEnvPrefix("PCL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
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
