package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// MonthDatePattern matches "Month D, YYYY".
const MonthDatePattern = `(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4}`

var (
	monthDateRe      = regexp.MustCompile(`(` + MonthDatePattern + `)`)
	monthDatePartsRe = regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2}),\s+(\d{4})`)
)

// FindMonthDate returns the first "Month D, YYYY" in text, as matched.
func FindMonthDate(text string) string {
	if m := monthDateRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// StandardizeDate normalizes whitespace in a "Month D, YYYY" date. Input that
// is not such a date is returned trimmed; empty input yields "".
func StandardizeDate(s string) string {
	if s == "" {
		return ""
	}
	if m := monthDatePartsRe.FindStringSubmatch(s); m != nil {
		return m[1] + " " + m[2] + ", " + m[3]
	}
	return trimSpace(s)
}

// NormalizeSpace trims s and collapses each whitespace run, non-breaking
// spaces included, to a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// trimSpace also removes non-breaking spaces left behind by &nbsp;.
func trimSpace(s string) string {
	return strings.TrimFunc(s, unicode.IsSpace)
}
