package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 4200 {
		t.Errorf("Port = %d, want 4200", cfg.Server.Port)
	}
	if cfg.Storage.DataDir == "" {
		t.Error("DataDir is empty")
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want gpt-4o-mini", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.MaxTokens != 600 {
		t.Errorf("MaxTokens = %d, want 600", cfg.OpenAI.MaxTokens)
	}
	if cfg.OpenAI.Timeout != 15*time.Second {
		t.Errorf("Timeout = %v, want 15s", cfg.OpenAI.Timeout)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Log.Level)
	}
	if cfg.HasAPIKey() {
		t.Error("HasAPIKey() = true without a key, want false (demo mode)")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MINDHAVEN_PORT", "9999")
	t.Setenv("MINDHAVEN_DATA_DIR", "/tmp/mh-test")
	t.Setenv("MINDHAVEN_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.HasAPIKey() {
		t.Error("HasAPIKey() = false with OPENAI_API_KEY set")
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", cfg.OpenAI.APIKey)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Port = %d, want env override 9999", cfg.Server.Port)
	}
	if cfg.Storage.DataDir != "/tmp/mh-test" {
		t.Errorf("DataDir = %q, want env override", cfg.Storage.DataDir)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "server:\n  port: 8088\nopenai:\n  model: gpt-4o\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8088 {
		t.Errorf("Port = %d, want file value 8088", cfg.Server.Port)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("Model = %q, want file value gpt-4o", cfg.OpenAI.Model)
	}
	// Unset keys keep their defaults.
	if cfg.OpenAI.MaxTokens != 600 {
		t.Errorf("MaxTokens = %d, want default 600", cfg.OpenAI.MaxTokens)
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
