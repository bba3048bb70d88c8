package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/ttc-alerts/bulletin"
	"github.com/theoremus-urban-solutions/ttc-alerts/converter"
)

// DefaultPort is the HTTP port used when none is configured.
const DefaultPort = 16181

// searchPaths are tried in order when no explicit path is given.
var searchPaths = []string{"config.yml", "./config/config.yml"}

// Defaults returns the configuration used for every unset value.
func Defaults() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Port:           DefaultPort,
			ReadTimeoutMS:  10000,
			WriteTimeoutMS: 10000,
		},
		Season: SeasonConfig{
			WeekendStart: bulletin.DefaultSeason().WeekendStart.Format("2006-01-02"),
		},
		Export: ExportConfig{
			AgencyID: "TTC",
			Timezone: "America/Toronto",
			Language: "en",
			BaseURL:  "https://www.ttc.ca",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "json",
		},
	}
}

// LoadAppConfig loads and validates the application configuration. An
// explicit path must exist. With an empty path the first existing file of
// config.yml and ./config/config.yml is used, and defaults when neither does.
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := readConfig(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfig(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return data, nil
	}
	for _, p := range searchPaths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", p, err)
		}
	}
	return nil, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SeasonValue returns the configured bulletin season.
func (c *AppConfig) SeasonValue() (bulletin.Season, error) {
	return bulletin.ParseSeason(c.Season.WeekendStart)
}

// ExportOptions builds exporter options from the export section. Now is left
// unset so each export stamps its own time.
func (c *AppConfig) ExportOptions() (converter.ExportOptions, error) {
	loc, err := converter.LoadLocation(c.Export.Timezone)
	if err != nil {
		return converter.ExportOptions{}, err
	}
	return converter.ExportOptions{
		Codespace: c.Export.AgencyID,
		Location:  loc,
		Language:  c.Export.Language,
		BaseURL:   c.Export.BaseURL,
	}, nil
}

// ReadTimeout returns the server read timeout.
func (c *AppConfig) ReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeoutMS) * time.Millisecond
}

// WriteTimeout returns the server write timeout.
func (c *AppConfig) WriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeoutMS) * time.Millisecond
}
