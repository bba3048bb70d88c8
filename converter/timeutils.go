package converter

import (
	"strconv"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/ttc-alerts/extract"
	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

const recordDateLayout = "January 2, 2006"

func iso8601(t time.Time) string {
	return t.Format(time.RFC3339)
}

// parseRecordDate resolves a "Month D, YYYY" date to midnight in loc.
func parseRecordDate(s string, loc *time.Location) (time.Time, bool) {
	s = extract.StandardizeDate(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(recordDateLayout, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseClock accepts "23:00" as well as "11 PM", "11:30 p.m." and similar.
func parseClock(s string) (hour, minute int, ok bool) {
	hm := extract.ConvertTo24Hour(s)
	h, m, found := strings.Cut(hm, ":")
	if !found {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(m)
	if err != nil || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

func atClock(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

// validity is a record's resolved active period. End is zero when open-ended.
type validity struct {
	Start time.Time
	End   time.Time
}

func (v validity) HasEnd() bool { return !v.End.IsZero() }

// resolveValidity turns a record's date and time strings into an absolute
// period. It reports false when the start date cannot be resolved.
func resolveValidity(a record.Alert, id string, loc *time.Location, w *WarningAggregator) (validity, bool) {
	day, ok := parseRecordDate(a.StartDate, loc)
	if !ok {
		w.Add(WarningNoResolvableDate, id)
		return validity{}, false
	}

	v := validity{Start: day}
	if a.StartTime != "" {
		if h, m, ok := parseClock(a.StartTime); ok {
			v.Start = atClock(day, h, m)
		} else {
			w.Add(WarningUnparseableTime, id)
		}
	}

	endDay, explicitEnd := day, false
	if a.EndDate != "" {
		if d, ok := parseRecordDate(a.EndDate, loc); ok {
			endDay, explicitEnd = d, true
		} else {
			w.Add(WarningNoResolvableDate, id)
		}
	}

	switch {
	case a.EndTime != "":
		h, m, ok := parseClock(a.EndTime)
		if !ok {
			w.Add(WarningUnparseableTime, id)
			break
		}
		v.End = atClock(endDay, h, m)
		if !v.End.After(v.Start) {
			v.End = v.End.AddDate(0, 0, 1)
		}
	case explicitEnd:
		v.End = endDay.AddDate(0, 0, 1)
	}
	return v, true
}
