package bulletin

import (
	"regexp"
	"strings"

	"github.com/theoremus-urban-solutions/ttc-alerts/extract"
	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

var accessibilityRe = regexp.MustCompile(`(?i)^([A-Za-z\s-]+):\s+(Elevator|Escalator)\s*([A-Za-z0-9]*)\s+out\s+of\s+service\s+(.+)`)

// accessibilityLocations is tried against the description only.
var accessibilityLocations = extract.NewChain(
	"between", `(?i)between\s+(.+?)\s+and\s+(.+?)(?:\.|$)`,
	"from_to", `(?i)from\s+(.+?)\s+to\s+(.+?)(?:\.|$)`,
)

// parseAccessibilityIssue classifies a notice as an equipment outage. It
// reports false when the notice does not open with "<Station>: Elevator" or
// "<Station>: Escalator" followed by "out of service".
func parseAccessibilityIssue(notice string) (*AccessibilityIssue, bool) {
	m := accessibilityRe.FindStringSubmatch(notice)
	if m == nil {
		return nil, false
	}
	a := &AccessibilityIssue{
		Station:       strings.TrimSpace(m[1]),
		EquipmentType: record.EquipmentType(strings.ToLower(m[2])),
		EquipmentID:   strings.TrimSpace(m[3]),
		Description:   strings.TrimSpace(m[4]),
	}
	if loc, ok := accessibilityLocations.FirstMatch(a.Description); ok {
		a.LocationStart = loc.Group(1)
		a.LocationEnd = loc.Group(2)
	}
	return a, true
}
