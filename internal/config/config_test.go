package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// clearEnv unsets every LEAGUE_* variable for the duration of the test.
// cleanenv treats a variable set to "" as a value, so they are removed
// rather than emptied.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LEAGUE_CONFIG", "LEAGUE_LOG_LEVEL", "LEAGUE_LOG_FORMAT", "LEAGUE_FORMAT"} {
		t.Setenv(key, "") // restores the previous value on cleanup
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, FormatText, cfg.Output.Format)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEAGUE_LOG_LEVEL", "debug")
	t.Setenv("LEAGUE_LOG_FORMAT", "json")
	t.Setenv("LEAGUE_FORMAT", "table")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, FormatTable, cfg.Output.Format)
}

func TestLoad_YAML(t *testing.T) {
	path := writeYAML(t, `
log:
  level: "error"
  format: "json"
output:
  format: "table"
`)
	clearEnv(t)
	t.Setenv("LEAGUE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, FormatTable, cfg.Output.Format)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, `
log:
  level: "error"
`)
	clearEnv(t)
	t.Setenv("LEAGUE_CONFIG", path)
	t.Setenv("LEAGUE_LOG_LEVEL", "info")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEAGUE_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoad_InvalidEnvFailsValidate(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEAGUE_FORMAT", "csv")

	cfg, err := Load()
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
}

func TestLoad_OverrideBeforeValidate(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEAGUE_LOG_LEVEL", "trace")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Log.Level)

	cfg.Log.Level = "debug"
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := Config{
		Log:    LogConfig{Level: "info", Format: "json"},
		Output: OutputConfig{Format: FormatText},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"upper case level", func(c *Config) { c.Log.Level = "DEBUG" }, ""},
		{"unknown level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"unknown output format", func(c *Config) { c.Output.Format = "csv" }, "output.format"},
		{"empty output format", func(c *Config) { c.Output.Format = "" }, "output.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
