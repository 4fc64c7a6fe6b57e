package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"jd": "jd.json",
		"api_key": "test-key",
		"database_url": "postgres://localhost/matcher",
		"port": 9090,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jd.json", cfg.JD)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "postgres://localhost/matcher", cfg.DatabaseURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv_ReadsVariables(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("PORT", "7777")

	cfg := FromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, 7777, cfg.Port)
}

func TestFromEnv_IgnoresBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, 0, cfg.Port)
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_MissingJDFile(t *testing.T) {
	cfg := &Config{JD: "/nonexistent/jd.json"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "jd file not found")
}

func TestValidate_ZeroConfigOK(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{APIKey: "from-flags"}
	defaults := Config{
		APIKey:      "from-file",
		DatabaseURL: "postgres://file/db",
		Port:        9000,
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "from-flags", merged.APIKey)
	assert.Equal(t, "postgres://file/db", merged.DatabaseURL)
	assert.Equal(t, 9000, merged.Port)
}

func TestMergeWithDefaults_DefaultPort(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, 8080, merged.Port)
}
