package extract

import (
	"regexp"
	"strings"
)

var (
	lineNumberRe    = regexp.MustCompile(`(?i)line\s+(\d+)`)
	stationSuffixRe = regexp.MustCompile(`(?i)\s+stations?$`)
	innerWhitespace = regexp.MustCompile(`\s+`)
	lineRouteIDRe   = regexp.MustCompile(`^Line (\d+)$`)
)

// ExtractLineNumber turns "line 1 (yonge-university)" into "Line 1". Input
// without a line number is returned unchanged; empty input yields "".
func ExtractLineNumber(s string) string {
	if s == "" {
		return ""
	}
	if m := lineNumberRe.FindStringSubmatch(s); m != nil {
		return "Line " + m[1]
	}
	return s
}

// LineRouteID returns the bare number of a normalized "Line N" string.
func LineRouteID(line string) (string, bool) {
	m := lineRouteIDRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// StripStationSuffix trims s and drops a trailing "station" or "stations".
func StripStationSuffix(s string) string {
	return stationSuffixRe.ReplaceAllString(strings.TrimSpace(s), "")
}

// CleanStationName trims, strips a trailing "station(s)" and collapses inner
// whitespace. Empty input yields "".
func CleanStationName(s string) string {
	if s == "" {
		return ""
	}
	return innerWhitespace.ReplaceAllString(StripStationSuffix(s), " ")
}
