package formatter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("45")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// AlertsTable renders markup records: one row per alert with its short id,
// line, work type, title and dates.
func AlertsTable(w io.Writer, records []record.Alert) {
	if len(records) == 0 {
		fmt.Fprintln(w, "\nNo alerts to display.")
		return
	}

	t := newTable("ID", "Line", "Work Type", "Title", "Dates")
	for _, a := range records {
		dates := a.StartDate
		if a.EndDate != "" {
			dates += " - " + a.EndDate
		}
		t.Row(
			orNA(truncate(a.ID, 8)),
			orNA(a.Line),
			orNA(truncate(a.WorkType, 24)),
			orNA(truncate(a.Title, 58)),
			orNA(dates),
		)
	}

	fmt.Fprintln(w, titleStyle.Render("\nFormatted TTC Alert Results:"))
	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "Total alerts: %d\n", len(records))
}

// ResultsTables renders bulletin records as a service-disruption table and
// an accessibility-issue table. A table is omitted when it has no rows.
func ResultsTables(w io.Writer, records []record.Alert) {
	if len(records) == 0 {
		fmt.Fprintln(w, "\nNo data to display.")
		return
	}
	if ds := record.FilterKind(records, record.KindServiceDisruption); len(ds) > 0 {
		serviceDisruptionsTable(w, ds)
	}
	if as := record.FilterKind(records, record.KindAccessibilityIssue); len(as) > 0 {
		accessibilityIssuesTable(w, as)
	}
}

func serviceDisruptionsTable(w io.Writer, records []record.Alert) {
	t := newTable("Date", "Time", "Locations", "Service", "Work Type", "Status")
	for _, a := range records {
		t.Row(
			orNA(truncate(a.StartDate, 13)),
			orNA(truncate(timeRange(a), 11)),
			orNA(truncate(locations(a), 33)),
			orNA(string(a.ServiceType)),
			orNA(truncate(a.WorkType, 23)),
			"Active",
		)
	}
	fmt.Fprintln(w, titleStyle.Render("\n=== SERVICE DISRUPTIONS ==="))
	fmt.Fprintln(w, t.Render())
}

func accessibilityIssuesTable(w io.Writer, records []record.Alert) {
	t := newTable("Station", "Equipment", "ID", "Location", "Status")
	for _, a := range records {
		t.Row(
			orNA(a.Station),
			orNA(string(a.EquipmentType)),
			orNA(a.EquipmentID),
			orNA(truncate(locations(a), 38)),
			"Out of Service",
		)
	}
	fmt.Fprintln(w, titleStyle.Render("\n=== ACCESSIBILITY ISSUES ==="))
	fmt.Fprintln(w, t.Render())
}
