package formatter

import (
	"unicode/utf8"

	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

const notAvailable = "N/A"

// locations joins a record's location pair as "A to B", or returns whichever
// side is set.
func locations(a record.Alert) string {
	switch {
	case a.LocationStart != "" && a.LocationEnd != "":
		return a.LocationStart + " to " + a.LocationEnd
	case a.LocationStart != "":
		return a.LocationStart
	default:
		return a.LocationEnd
	}
}

// timeRange joins a record's times as "S-E", or returns whichever is set.
func timeRange(a record.Alert) string {
	switch {
	case a.StartTime != "" && a.EndTime != "":
		return a.StartTime + "-" + a.EndTime
	case a.StartTime != "":
		return a.StartTime
	default:
		return a.EndTime
	}
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// field is one named record attribute, in the order of the record's JSON form.
type field struct {
	name  string
	value func(a record.Alert) string
}

var recordFields = []field{
	{"id", func(a record.Alert) string { return a.ID }},
	{"url", func(a record.Alert) string { return a.URL }},
	{"line", func(a record.Alert) string { return a.Line }},
	{"location_start", func(a record.Alert) string { return a.LocationStart }},
	{"location_end", func(a record.Alert) string { return a.LocationEnd }},
	{"start_date", func(a record.Alert) string { return a.StartDate }},
	{"end_date", func(a record.Alert) string { return a.EndDate }},
	{"start_time", func(a record.Alert) string { return a.StartTime }},
	{"end_time", func(a record.Alert) string { return a.EndTime }},
	{"service_type", func(a record.Alert) string { return string(a.ServiceType) }},
	{"work_type", func(a record.Alert) string { return a.WorkType }},
	{"title", func(a record.Alert) string { return a.Title }},
	{"description", func(a record.Alert) string { return a.Description }},
	{"kind", func(a record.Alert) string { return string(a.Kind) }},
	{"station", func(a record.Alert) string { return a.Station }},
	{"equipment_type", func(a record.Alert) string { return string(a.EquipmentType) }},
	{"equipment_id", func(a record.Alert) string { return a.EquipmentID }},
}

// presentFields returns the record fields set on at least one record.
func presentFields(records []record.Alert) []field {
	var out []field
	for _, f := range recordFields {
		for _, a := range records {
			if f.value(a) != "" {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
