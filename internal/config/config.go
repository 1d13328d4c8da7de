// Package config loads application settings from an optional YAML file
// and PREPDRILL_* environment variables, with env taking precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/abhisek/prepdrill/internal/llm"
	"github.com/abhisek/prepdrill/internal/session"
	"github.com/abhisek/prepdrill/internal/store"
)

// SessionConfig holds session defaults applied when the user does not
// choose otherwise at setup.
type SessionConfig struct {
	// MaxItems is the number of questions per session.
	MaxItems int

	// StartDifficulty is the level the first question is generated at.
	StartDifficulty session.Level

	// Skills pre-populates the skill selection.
	Skills []string
}

// Config is the loaded application configuration.
type Config struct {
	Session SessionConfig
	LLM     llm.Config
	DBPath  string
}

// Load reads configuration: built-in defaults, then an optional
// prepdrill.yaml (working directory or the user config dir), then
// PREPDRILL_* environment variables.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("session.max_items", session.DefaultMaxItems)
	v.SetDefault("session.start_difficulty", string(session.LevelMedium))
	if dbPath, err := store.DefaultDBPath(); err == nil {
		v.SetDefault("db.path", dbPath)
	}

	v.SetEnvPrefix("PREPDRILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("prepdrill")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "prepdrill"))
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	level, ok := session.ParseLevel(v.GetString("session.start_difficulty"))
	if !ok {
		return Config{}, fmt.Errorf("invalid session.start_difficulty: %q", v.GetString("session.start_difficulty"))
	}

	maxItems := v.GetInt("session.max_items")
	if maxItems <= 0 {
		return Config{}, fmt.Errorf("session.max_items must be positive, got %d", maxItems)
	}

	cfg := Config{
		Session: SessionConfig{
			MaxItems:        maxItems,
			StartDifficulty: level,
			Skills:          v.GetStringSlice("session.skills"),
		},
		LLM:    llm.ConfigFromEnv(),
		DBPath: v.GetString("db.path"),
	}

	// The file may select provider and model; API keys stay env-only.
	if p := v.GetString("llm.provider"); p != "" && os.Getenv("PREPDRILL_LLM_PROVIDER") == "" {
		cfg.LLM.Provider = p
	}

	return cfg, nil
}
