package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           int `yaml:"port" validate:"gt=0,lte=65535"`
	ReadTimeoutMS  int `yaml:"readTimeoutMS" validate:"gte=0"`
	WriteTimeoutMS int `yaml:"writeTimeoutMS" validate:"gte=0"`
}

// SeasonConfig anchors bulletin dates. WeekendStart is the Friday a
// bulletin's "This weekend" refers to, as YYYY-MM-DD.
type SeasonConfig struct {
	WeekendStart string `yaml:"weekendStart" validate:"required,datetime=2006-01-02"`
}

// ExportConfig contains SIRI-SX and GTFS-Realtime export settings
type ExportConfig struct {
	AgencyID string `yaml:"agencyID" validate:"required,alphanum"`
	Timezone string `yaml:"timezone" validate:"required,timezone"`
	Language string `yaml:"language" validate:"required,bcp47_language_tag"`
	BaseURL  string `yaml:"baseURL" validate:"omitempty,url"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// OutputConfig contains CLI output defaults
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=json table csv html summary siri-json siri-xml gtfsrt gtfsrt-text"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server" validate:"required"`
	Season  SeasonConfig  `yaml:"season" validate:"required"`
	Export  ExportConfig  `yaml:"export" validate:"required"`
	Logging LoggingConfig `yaml:"logging" validate:"required"`
	Output  OutputConfig  `yaml:"output" validate:"required"`
}
