// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Unset values fall back to Defaults, so an empty file is a valid
// configuration. The season section anchors weekday-only bulletin dates to a
// concrete month and year.
package config
