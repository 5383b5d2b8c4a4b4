package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbxark/worldgen/completion"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("WORLDGEN_API_KEY_FILE", "")
	t.Setenv("WORLDGEN_MODEL", "")
	t.Setenv("WORLDGEN_PROVIDER", "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, conf.Provider)
	assert.Equal(t, ModeChat, conf.Mode)
	assert.Equal(t, DefaultModel, conf.Model)
	assert.Equal(t, DefaultBaseURL, conf.BaseURL)
	assert.Equal(t, DefaultAPIKeyFile, conf.APIKeyFile)
}

func TestLoadFileAndEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.json", `{"api_key":"sk-file","model":"gpt-4o","mode":"tool","log_level":"debug"}`)
	t.Setenv("WORLDGEN_MODEL", "gpt-4o-mini")

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", conf.Model)
	assert.Equal(t, ModeTool, conf.Mode)
	assert.Empty(t, conf.APIKeyFile)

	key, err := conf.APIKeyValue()
	require.NoError(t, err)
	assert.Equal(t, "sk-file", key)

	level, err := conf.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
	assert.NotContains(t, conf.String(), "sk-file")
}

func TestAPIKeyFileWins(t *testing.T) {
	clearEnv(t)
	keyPath := writeFile(t, "key", "  sk-from-file \n")
	path := writeFile(t, "config.json", `{"api_key":"sk-inline"}`)
	t.Setenv("WORLDGEN_API_KEY_FILE", keyPath)

	conf, err := Load(path)
	require.NoError(t, err)
	key, err := conf.APIKeyValue()
	require.NoError(t, err)
	assert.Equal(t, "sk-from-file", key)
}

func TestAPIKeyEmptyFile(t *testing.T) {
	conf := &Config{APIKeyFile: writeFile(t, "key", "\n")}
	_, err := conf.APIKeyValue()
	assert.ErrorIs(t, err, completion.ErrEmptyAPIKey)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	for _, body := range []string{
		`{"provider":"anthropic"}`,
		`{"mode":"stream"}`,
		`{"provider":"gemini","mode":"tool"}`,
		`{"log_level":"loud"}`,
		`{not json`,
	} {
		_, err := Load(writeFile(t, "config.json", body))
		assert.Error(t, err, body)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadGeminiDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORLDGEN_PROVIDER", "Gemini")
	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, conf.Provider)
	assert.Equal(t, DefaultGeminiModel, conf.Model)
	assert.Empty(t, conf.BaseURL)
}
