package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lbtui/internal/platform/config"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "http://127.0.0.1:8000" {
		t.Fatalf("unexpected default base url: %s", cfg.APIBaseURL)
	}
	if cfg.LessonID != 1 || cfg.RequestTimeout != 15*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.AutoAdvance || cfg.RefreshAfterAnswer {
		t.Fatalf("optional behaviors must default off")
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	payload := "api_base_url: https://api.example.com/\nlesson_id: 3\nauto_advance: true\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LBTUI_LESSON_ID", "7")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.APIBaseURL)
	}
	if cfg.LessonID != 7 {
		t.Fatalf("env must override file, got lesson %d", cfg.LessonID)
	}
	if !cfg.AutoAdvance {
		t.Fatalf("auto_advance from file lost")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("lesson_id: 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatalf("non-positive lesson id must fail")
	}
}
