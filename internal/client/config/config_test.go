package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	os.Args = append([]string{"cli"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, "smartfit.db", cfg.CredentialDBPath)
	require.Equal(t, 24*time.Hour, cfg.RefreshThreshold)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv(APIBaseURLEnvName, "https://api.example.com/api")

	cfg := LoadConfig()
	require.Equal(t, "https://api.example.com/api", cfg.APIBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	resetArgs(t, "-a", "http://flag.example.com/api", "-d", "other.db")
	t.Setenv(APIBaseURLEnvName, "https://env.example.com/api")

	cfg := LoadConfig()
	require.Equal(t, "http://flag.example.com/api", cfg.APIBaseURL)
	require.Equal(t, "other.db", cfg.CredentialDBPath)
}

func TestLoadConfig_JsonFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")

	jc := map[string]any{
		"api_base_url":       "https://json.example.com/api",
		"request_timeout":    "15s",
		"refresh_threshold":  "48h",
		"credential_db_path": "json.db",
	}
	data, err := json.Marshal(jc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(file, data, 0o600))

	resetArgs(t, "-c", file)

	cfg := LoadConfig()
	require.Equal(t, "https://json.example.com/api", cfg.APIBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, 48*time.Hour, cfg.RefreshThreshold)
	require.Equal(t, "json.db", cfg.CredentialDBPath)
}

func TestLoadConfig_JsonPartial_KeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"api_base_url":"https://json.example.com/api"}`), 0o600))

	resetArgs(t, "-c", file)

	cfg := LoadConfig()
	require.Equal(t, "https://json.example.com/api", cfg.APIBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, "smartfit.db", cfg.CredentialDBPath)
}
