package logger_test

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	logpkg "github.com/bharaths07/sportsv1.1-sub000/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      *logpkg.LoggerConfig
		expectError bool
		wantLevel   zerolog.Level
	}{
		{
			name: "production json",
			config: &logpkg.LoggerConfig{
				ServiceName: "test-service",
				Env:         "prod",
				Level:       "info",
				TimeFormat:  "unix",
				Fields:      map[string]interface{}{"key": "value"},
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:        "invalid env",
			config:      &logpkg.LoggerConfig{Env: "wrong-env", Level: "debug"},
			expectError: true,
		},
		{
			name:        "invalid level",
			config:      &logpkg.LoggerConfig{Env: "prod", Level: "invalid-level"},
			expectError: true,
		},
		{
			name:        "invalid time format",
			config:      &logpkg.LoggerConfig{Env: "prod", TimeFormat: "kitchen"},
			expectError: true,
		},
		{
			name:      "staging warn to stderr",
			config:    &logpkg.LoggerConfig{Env: "staging", Level: "warn", OutputTarget: "stderr", Stacktrace: true},
			wantLevel: zerolog.WarnLevel,
		},
		{
			name:      "dev info console only",
			config:    &logpkg.LoggerConfig{Env: "dev", Level: "info"},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "test env defaults to info",
			config:    &logpkg.LoggerConfig{Env: "test"},
			wantLevel: zerolog.InfoLevel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := logpkg.New(tc.config)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantLevel, zerolog.GlobalLevel())
		})
	}

	t.Run("debug log file creation", func(t *testing.T) {
		wd, err := os.Getwd()
		assert.NoError(t, err)
		assert.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })
		_, err = logpkg.New(&logpkg.LoggerConfig{Env: "dev", Level: "debug"})
		assert.NoError(t, err)

		_, statErr := os.Stat(logpkg.DebugLogPath)
		assert.NoError(t, statErr)
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg := &logpkg.LoggerConfig{}
		_, err := logpkg.New(cfg)
		assert.NoError(t, err)
		assert.Equal(t, "prod", cfg.Env)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "match-tracker", cfg.ServiceName)
		assert.True(t, cfg.Stacktrace)
	})
}
