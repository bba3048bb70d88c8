package converter

import (
	"fmt"
	"time"
)

// ExportOptions contains everything the exporters need beyond the records.
// It has no dependencies on config files.
type ExportOptions struct {
	// Codespace prefixes SIRI references ({codespace}:Line:{id}) and is the
	// GTFS-RT agency_id. Defaults to "UNKNOWN".
	Codespace string

	// Location is the time zone record dates are resolved in. Defaults to UTC.
	Location *time.Location

	// Language tags natural-language text. Defaults to "en".
	Language string

	// BaseURL is prepended to relative record URLs. Optional.
	BaseURL string

	// Now is the response timestamp. Defaults to the current time.
	Now time.Time

	// Warnings collects records that could not be fully exported. Optional.
	Warnings *WarningAggregator
}

func (o ExportOptions) withDefaults() ExportOptions {
	if o.Codespace == "" {
		o.Codespace = "UNKNOWN"
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Language == "" {
		o.Language = "en"
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}

// LoadLocation resolves an IANA time zone name. An empty name means UTC.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", name, err)
	}
	return loc, nil
}
