package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimePattern matches a 12-hour time-of-day mention such as "11 p.m." or "1:30am".
const TimePattern = `\d{1,2}(?::\d{2})?\s*(?:a\.m\.|p\.m\.|am|pm)`

var (
	timeRe     = regexp.MustCompile(`(?i)` + TimePattern)
	clockParts = regexp.MustCompile(`^\s*(\d{1,2})(?::(\d{1,2}))?\s*(am|pm)?`)
)

// ContainsTimeInfo reports whether text mentions a time of day.
func ContainsTimeInfo(text string) bool {
	return text != "" && timeRe.MatchString(text)
}

// ExtractTimes returns every time-of-day mention in text, in order of
// appearance, exactly as written.
func ExtractTimes(text string) []string {
	if text == "" {
		return nil
	}
	return timeRe.FindAllString(text, -1)
}

// DisplayTime strips period punctuation and upper-cases the meridiem without
// changing the clock: "11 p.m." becomes "11 PM".
func DisplayTime(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, ".", ""))
}

// ConvertTo24Hour converts a 12-hour time to zero-padded HH:MM.
//
// Minutes default to "00". A pm hour other than 12 gains 12, and 12 am becomes
// 00. Input without a meridiem keeps its hour, so the function is idempotent on
// its own output. Input without a leading hour yields "".
func ConvertTo24Hour(s string) string {
	clean := strings.ToLower(strings.ReplaceAll(s, ".", ""))
	m := clockParts.FindStringSubmatch(clean)
	if m == nil {
		return ""
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return ""
	}
	minutes := m[2]
	if minutes == "" {
		minutes = "00"
	} else if len(minutes) == 1 {
		minutes = "0" + minutes
	}
	switch m[3] {
	case "pm":
		if hours != 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	}
	return fmt.Sprintf("%02d:%s", hours, minutes)
}
