package extract

import (
	"regexp"
	"strings"

	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

var (
	servicePhraseRe = regexp.MustCompile(`(?i)(subway|bus|streetcar|train)\s+service`)
	weekendRe       = regexp.MustCompile(`(?i)(?:this\s+weekend|saturday|sunday|weekend)`)
)

// ServiceTypeFromPhrase detects "<mode> service" and returns the mode.
func ServiceTypeFromPhrase(text string) (record.ServiceType, bool) {
	m := servicePhraseRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return record.ParseServiceType(strings.ToLower(m[1]))
}

// DetermineServiceType looks for mode keywords anywhere in text, in the fixed
// priority subway, bus, streetcar, train.
func DetermineServiceType(text string) (record.ServiceType, bool) {
	if text == "" {
		return "", false
	}
	lower := strings.ToLower(text)
	for _, st := range []record.ServiceType{record.ServiceSubway, record.ServiceBus, record.ServiceStreetcar, record.ServiceTrain} {
		if strings.Contains(lower, string(st)) {
			return st, true
		}
	}
	return "", false
}

// IsWeekendDisruption reports whether text reads as a weekend notice.
func IsWeekendDisruption(text string) bool {
	return text != "" && weekendRe.MatchString(text)
}
