// Package config loads service configuration from defaults, an optional
// config file, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	OpenAI  OpenAIConfig  `mapstructure:"openai"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// OpenAIConfig selects the real-model path. An empty APIKey is not an error:
// the service runs in demo mode on the deterministic fallback.
type OpenAIConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration. path may be empty, in which case only defaults
// and environment variables apply. Environment variables use underscore
// paths (SERVER_PORT, STORAGE_DATA_DIR, OPENAI_API_KEY, LOG_LEVEL).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 4200)
	v.SetDefault("storage.data_dir", defaultDataDir())
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.max_tokens", 600)
	v.SetDefault("openai.temperature", 0.7)
	v.SetDefault("openai.timeout", 15*time.Second)
	v.SetDefault("log.level", "info")

	// Enable environment variable support.
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Environment overrides for the common flat variable names.
	if apiKey := v.GetString("OPENAI_API_KEY"); apiKey != "" {
		config.OpenAI.APIKey = apiKey
	}
	if port := v.GetInt("MINDHAVEN_PORT"); port != 0 {
		config.Server.Port = port
	}
	if dir := v.GetString("MINDHAVEN_DATA_DIR"); dir != "" {
		config.Storage.DataDir = dir
	}
	if level := v.GetString("MINDHAVEN_LOG_LEVEL"); level != "" {
		config.Log.Level = level
	}

	return &config, nil
}

// HasAPIKey reports whether a model credential is configured. Absence
// selects demo mode, never an error.
func (c *Config) HasAPIKey() bool {
	return c.OpenAI.APIKey != ""
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mindhaven"
	}
	return filepath.Join(home, ".mindhaven")
}
