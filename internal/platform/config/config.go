package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is loaded from an optional YAML file and then overridden by
// LBTUI_* environment variables, so a scripted CLI run can point at a
// different backend without touching the config file.
type Config struct {
	APIBaseURL         string        `yaml:"api_base_url" env:"LBTUI_API_BASE_URL"`
	LessonID           int64         `yaml:"lesson_id" env:"LBTUI_LESSON_ID"`
	DataDir            string        `yaml:"data_dir" env:"LBTUI_DATA_DIR"`
	RequestTimeout     time.Duration `yaml:"request_timeout" env:"LBTUI_REQUEST_TIMEOUT"`
	AutoAdvance        bool          `yaml:"auto_advance" env:"LBTUI_AUTO_ADVANCE"`
	AdvanceDelay       time.Duration `yaml:"advance_delay" env:"LBTUI_ADVANCE_DELAY"`
	RefreshAfterAnswer bool          `yaml:"refresh_after_answer" env:"LBTUI_REFRESH_AFTER_ANSWER"`
	LogLevel           string        `yaml:"log_level" env:"LBTUI_LOG_LEVEL"`
}

func defaults() Config {
	home, _ := os.UserHomeDir()
	return Config{
		APIBaseURL:     "http://127.0.0.1:8000",
		LessonID:       1,
		DataDir:        filepath.Join(home, ".lbtui"),
		RequestTimeout: 15 * time.Second,
		AdvanceDelay:   2500 * time.Millisecond,
		LogLevel:       "info",
	}
}

// Load reads path if it exists (a missing default file is not an error),
// applies environment overrides, and validates the result.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path == "" {
		path = filepath.Join(cfg.DataDir, "config.yaml")
	}
	payload, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(payload, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("api_base_url is required")
	}
	if cfg.LessonID <= 0 {
		return Config{}, fmt.Errorf("lesson_id must be positive")
	}
	if cfg.DataDir == "" {
		return Config{}, fmt.Errorf("data_dir is required")
	}
	return cfg, nil
}

// CredentialPath is the user session credential file.
func (c Config) CredentialPath() string { return "credential.json" }

// AdminCredentialPath is kept distinct so a user session and an admin
// session can coexist without collision.
func (c Config) AdminCredentialPath() string { return "admin-credential.json" }

func (c Config) HistoryDBPath() string { return filepath.Join(c.DataDir, "history.db") }

func (c Config) LogPath() string { return filepath.Join(c.DataDir, "lbtui.log") }
