package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

// CSVKind selects the column set of a CSV export.
type CSVKind string

const (
	CSVAlerts        CSVKind = "alerts"
	CSVDisruptions   CSVKind = "disruptions"
	CSVAccessibility CSVKind = "accessibility"
	CSVGeneric       CSVKind = "generic"
)

type csvLayout struct {
	headers []string
	row     func(a record.Alert) []string
}

var csvLayouts = map[CSVKind]csvLayout{
	CSVAlerts: {
		headers: []string{"ID", "Line", "Stations", "Work Type", "Title", "Start Date", "End Date", "Start Time", "End Time", "URL"},
		row: func(a record.Alert) []string {
			return []string{a.ID, a.Line, locations(a), a.WorkType, a.Title, a.StartDate, a.EndDate, a.StartTime, a.EndTime, a.URL}
		},
	},
	CSVDisruptions: {
		headers: []string{"Date", "Time", "Locations", "Service", "Work Type"},
		row: func(a record.Alert) []string {
			return []string{a.StartDate, timeRange(a), locations(a), string(a.ServiceType), a.WorkType}
		},
	},
	CSVAccessibility: {
		headers: []string{"Station", "Equipment", "ID", "Location", "Description"},
		row: func(a record.Alert) []string {
			return []string{a.Station, string(a.EquipmentType), a.EquipmentID, locations(a), a.Description}
		},
	},
}

func genericLayout() csvLayout {
	headers := make([]string, len(recordFields))
	for i, f := range recordFields {
		headers[i] = f.name
	}
	return csvLayout{
		headers: headers,
		row: func(a record.Alert) []string {
			row := make([]string, len(recordFields))
			for i, f := range recordFields {
				row[i] = f.value(a)
			}
			return row
		},
	}
}

// ParseCSVKind maps a name to a CSVKind. Unknown names are an error.
func ParseCSVKind(s string) (CSVKind, error) {
	switch k := CSVKind(strings.ToLower(s)); k {
	case CSVAlerts, CSVDisruptions, CSVAccessibility, CSVGeneric:
		return k, nil
	default:
		return "", fmt.Errorf("unknown csv kind %q", s)
	}
}

// WriteCSV writes a header row and one row per record. Nothing is written for
// an empty record list. Unknown kinds use the generic layout, one column per
// record field.
func WriteCSV(w io.Writer, records []record.Alert, kind CSVKind) error {
	if len(records) == 0 {
		return nil
	}
	layout, ok := csvLayouts[kind]
	if !ok {
		layout = genericLayout()
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(layout.headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, a := range records {
		if err := cw.Write(layout.row(a)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatCSV is WriteCSV into a string.
func FormatCSV(records []record.Alert, kind CSVKind) (string, error) {
	var b strings.Builder
	if err := WriteCSV(&b, records, kind); err != nil {
		return "", err
	}
	return b.String(), nil
}
