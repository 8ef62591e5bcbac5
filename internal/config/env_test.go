package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `env:"YUKON_TEST_NAME" envDefault:"fallback"`
	Level int    `env:"YUKON_TEST_LEVEL" envDefault:"3"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg sample
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, "fallback", cfg.Name)
	assert.Equal(t, 3, cfg.Level)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("YUKON_TEST_NAME", "custom")
	t.Setenv("YUKON_TEST_LEVEL", "9")
	var cfg sample
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, "custom", cfg.Name)
	assert.Equal(t, 9, cfg.Level)
}

func TestParseEnvBadValue(t *testing.T) {
	t.Setenv("YUKON_TEST_LEVEL", "lots")
	var cfg sample
	assert.Error(t, ParseEnv(&cfg))
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("YUKON_TEST_DOTENV=from-file\nYUKON_TEST_NAME=file-name\n"), 0o644))
	t.Setenv("YUKON_TEST_NAME", "from-env")
	t.Setenv("YUKON_TEST_DOTENV", "")
	os.Unsetenv("YUKON_TEST_DOTENV")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("YUKON_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("YUKON_TEST_NAME"), "existing variables win")
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
