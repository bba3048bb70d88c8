package bulletin

import (
	"strings"

	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

// Extractor turns bulletin text into notices. It holds no mutable state and
// is safe for concurrent use.
type Extractor struct {
	season Season
}

// New returns an Extractor anchored on season. A zero Season means
// DefaultSeason.
func New(season Season) *Extractor {
	if season.IsZero() {
		season = DefaultSeason()
	}
	return &Extractor{season: season}
}

// Season returns the extractor's date anchor.
func (x *Extractor) Season() Season {
	return x.season
}

// Parse segments text and classifies every notice, in input order. Blank
// text yields an empty, non-nil slice.
func (x *Extractor) Parse(text string) []Notice {
	notices := []Notice{}
	if strings.TrimSpace(text) == "" {
		return notices
	}
	for _, segment := range Segment(text) {
		if n, ok := x.Classify(segment); ok {
			notices = append(notices, n)
		}
	}
	return notices
}

// Classify classifies a single notice. Accessibility issues take precedence
// over service disruptions. It reports false when the notice is neither.
func (x *Extractor) Classify(notice string) (Notice, bool) {
	if a, ok := parseAccessibilityIssue(notice); ok {
		return a, true
	}
	if d, ok := parseServiceDisruption(x.season, notice); ok {
		return d, true
	}
	return nil, false
}

// Extract is Parse flattened to records.
func (x *Extractor) Extract(text string) []record.Alert {
	return record.Records(x.Parse(text))
}

var defaultExtractor = New(DefaultSeason())

// Parse uses an Extractor anchored on DefaultSeason.
func Parse(text string) []Notice {
	return defaultExtractor.Parse(text)
}

// Extract uses an Extractor anchored on DefaultSeason.
func Extract(text string) []record.Alert {
	return defaultExtractor.Extract(text)
}

// ServiceDisruptions returns the service disruptions among notices.
func ServiceDisruptions(notices []Notice) []*ServiceDisruption {
	out := []*ServiceDisruption{}
	for _, n := range notices {
		if d, ok := n.(*ServiceDisruption); ok {
			out = append(out, d)
		}
	}
	return out
}

// AccessibilityIssues returns the accessibility issues among notices.
func AccessibilityIssues(notices []Notice) []*AccessibilityIssue {
	out := []*AccessibilityIssue{}
	for _, n := range notices {
		if a, ok := n.(*AccessibilityIssue); ok {
			out = append(out, a)
		}
	}
	return out
}
