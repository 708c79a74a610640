package config

import (
	"github.com/bharaths07/sportsv1.1-sub000/internal/logger"
)

// Config is the root application configuration loaded from config.yaml
// and APP_* environment variables.
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Logger        logger.LoggerConfig `mapstructure:"logger"`
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
}

type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"`
	Port    int    `mapstructure:"port" validate:"min=1,max=65535"`
	// ShutdownTimeout in seconds.
	ShutdownTimeout int `mapstructure:"shutdown_timeout" validate:"min=0"`
	// CORSOrigins lists allowed browser origins; empty allows any.
	CORSOrigins []string `mapstructure:"cors_origins" validate:"dive,url"`
}

type PostgresConfig struct {
	Host              string `mapstructure:"host" validate:"required"`
	Port              int    `mapstructure:"port" validate:"min=1,max=65535"`
	User              string `mapstructure:"user" validate:"required"`
	Password          string `mapstructure:"password" validate:"required"`
	DBName            string `mapstructure:"db" validate:"required"`
	SSLMode           string `mapstructure:"sslmode"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"min=0"`
	MinConns          int32  `mapstructure:"min_conns" validate:"min=0"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
	// RunMigrations applies the embedded goose migrations at startup.
	RunMigrations bool `mapstructure:"run_migrations"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"required"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
	// KeyPrefix namespaces every key this service writes.
	KeyPrefix string `mapstructure:"key_prefix"`
	// FeedStreamMaxLen caps each live feed stream (approximate trim).
	FeedStreamMaxLen int64 `mapstructure:"feed_stream_max_len" validate:"min=0"`
}

// NotificationsConfig seeds the preference toggles and the platform push target.
type NotificationsConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MatchStart  bool   `mapstructure:"match_start"`
	MatchResult bool   `mapstructure:"match_result"`
	Tournament  bool   `mapstructure:"tournament"`
	WebhookURL  string `mapstructure:"webhook_url" validate:"omitempty,url"`
	// MaxStored bounds the persisted notification list.
	MaxStored int64 `mapstructure:"max_stored" validate:"min=0"`
}
