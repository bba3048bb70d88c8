package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadAppConfig_ExplicitPathOverridesDefaults(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "app.yml", `
server:
  port: 8080
season:
  weekendStart: "2026-08-14"
export:
  agencyID: TTC
  timezone: America/Toronto
logging:
  level: debug
  format: json
`)

	cfg, err := LoadAppConfig(p)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "en", cfg.Export.Language)
	assert.Equal(t, "json", cfg.Output.Format)

	season, err := cfg.SeasonValue()
	require.NoError(t, err)
	assert.Equal(t, time.August, season.Month())
	assert.Equal(t, 2026, season.Year())
}

func TestLoadAppConfig_MissingExplicitPath(t *testing.T) {
	_, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadAppConfig_NoFileYieldsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadAppConfig("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "2025-07-25", cfg.Season.WeekendStart)
}

func TestLoadAppConfig_SearchPathFallback(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, filepath.Join("config", "config.yml"), "server:\n  port: 9090\n")
	t.Chdir(dir)

	cfg, err := LoadAppConfig("")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadAppConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "server: [port"},
		{"negative port", "server:\n  port: -1\n"},
		{"bad season date", "season:\n  weekendStart: July 25\n"},
		{"unknown timezone", "export:\n  timezone: Mars/Olympus\n"},
		{"bad log level", "logging:\n  level: loud\n"},
		{"bad output format", "output:\n  format: pdf\n"},
		{"bad base url", "export:\n  baseURL: not a url\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeConfig(t, t.TempDir(), "config.yml", tt.content)
			_, err := LoadAppConfig(p)
			assert.Error(t, err)
		})
	}
}

func TestAppConfig_ExportOptions(t *testing.T) {
	cfg := Defaults()

	opts, err := cfg.ExportOptions()
	require.NoError(t, err)
	assert.Equal(t, "TTC", opts.Codespace)
	assert.Equal(t, "America/Toronto", opts.Location.String())
	assert.Equal(t, "https://www.ttc.ca", opts.BaseURL)
	assert.True(t, opts.Now.IsZero())
}
