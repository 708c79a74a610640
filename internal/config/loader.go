package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DotEnvFile holds local secrets during development. It is optional.
const DotEnvFile = ".env"

// secretKeys never live in config.yaml; they must come from the environment.
var secretKeys = []string{"postgres.user", "postgres.password", "postgres.db", "redis.password"}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "match-tracker")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.shutdown_timeout", 10)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 1)
	v.SetDefault("postgres.max_conn_lifetime", 3600)
	v.SetDefault("postgres.max_conn_idle_time", 300)
	v.SetDefault("postgres.health_check_period", 30)
	v.SetDefault("postgres.run_migrations", true)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "matchtracker")
	v.SetDefault("redis.feed_stream_max_len", 10000)

	v.SetDefault("notifications.enabled", true)
	v.SetDefault("notifications.match_start", true)
	v.SetDefault("notifications.match_result", true)
	v.SetDefault("notifications.tournament", true)
	v.SetDefault("notifications.max_stored", 200)
}

// Load reads the YAML file at path, overlays APP_* env vars and validates
// the result. Variables from DotEnvFile never override the real environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", DotEnvFile, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	for _, key := range secretKeys {
		// AutomaticEnv only covers keys viper already knows about.
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(config.withoutLogger()); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return &config, nil
}

// withoutLogger returns a copy whose logger section is skipped by the
// validator; logger.New validates it after applying its own defaults.
func (c Config) withoutLogger() struct {
	App           AppConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Notifications NotificationsConfig
} {
	return struct {
		App           AppConfig
		Postgres      PostgresConfig
		Redis         RedisConfig
		Notifications NotificationsConfig
	}{c.App, c.Postgres, c.Redis, c.Notifications}
}
