// Package config loads the model settings used by the worldgen command.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/tbxark/worldgen/completion"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	ModeChat = "chat"
	ModeTool = "tool"

	DefaultModel       = "gpt-3.5-turbo-1106"
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultAPIKeyFile  = ".openapikey"
)

type Config struct {
	APIKey     string `json:"api_key"`
	APIKeyFile string `json:"api_key_file"`
	BaseURL    string `json:"base_url"`
	Model      string `json:"model"`
	Provider   string `json:"provider"`
	Mode       string `json:"mode"`
	LogLevel   string `json:"log_level"`
}

// Load reads path (skipped when empty), then .env and WORLDGEN_* variables,
// then fills defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	conf := &Config{}
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := sonic.Unmarshal(file, conf); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("WORLDGEN_API_KEY_FILE")); v != "" {
		conf.APIKeyFile = v
	}
	if v := strings.TrimSpace(os.Getenv("WORLDGEN_MODEL")); v != "" {
		conf.Model = v
	}
	if v := strings.TrimSpace(os.Getenv("WORLDGEN_PROVIDER")); v != "" {
		conf.Provider = v
	}

	conf.applyDefaults()
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) applyDefaults() {
	c.Provider = firstNonEmpty(strings.ToLower(strings.TrimSpace(c.Provider)), ProviderOpenAI)
	c.Mode = firstNonEmpty(strings.ToLower(strings.TrimSpace(c.Mode)), ModeChat)
	if c.Provider == ProviderGemini {
		c.Model = firstNonEmpty(strings.TrimSpace(c.Model), DefaultGeminiModel)
	} else {
		c.Model = firstNonEmpty(strings.TrimSpace(c.Model), DefaultModel)
		c.BaseURL = firstNonEmpty(strings.TrimSpace(c.BaseURL), DefaultBaseURL)
	}
	if c.APIKeyFile == "" && c.APIKey == "" {
		c.APIKeyFile = DefaultAPIKeyFile
	}
}

func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	switch c.Mode {
	case ModeChat, ModeTool:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Mode == ModeTool && c.Provider != ProviderOpenAI {
		return fmt.Errorf("mode %q needs provider %q", ModeTool, ProviderOpenAI)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// APIKeyValue returns the key from APIKeyFile when set, otherwise APIKey.
func (c *Config) APIKeyValue() (string, error) {
	if c.APIKeyFile != "" {
		return completion.LoadAPIKey(c.APIKeyFile)
	}
	if key := strings.TrimSpace(c.APIKey); key != "" {
		return key, nil
	}
	return "", completion.ErrEmptyAPIKey
}

func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Provider:%q, BaseURL:%q, Model:%q, Mode:%q}", c.Provider, c.BaseURL, c.Model, c.Mode)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
