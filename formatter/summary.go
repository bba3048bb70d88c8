package formatter

import (
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

// Count is one row of a breakdown.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary totals a result set by kind. Breakdowns keep the order in which
// names first appear.
type Summary struct {
	Total               int     `json:"total"`
	ServiceDisruptions  int     `json:"service_disruptions"`
	AccessibilityIssues int     `json:"accessibility_issues"`
	MarkupAlerts        int     `json:"markup_alerts"`
	DisruptionsByLine   []Count `json:"disruptions_by_line,omitempty"`
	IssuesByStation     []Count `json:"issues_by_station,omitempty"`
}

// Summarize counts records per kind, service disruptions per line and
// accessibility issues per station. Missing names count as "Unknown".
func Summarize(records []record.Alert) Summary {
	s := Summary{Total: len(records)}
	var byLine, byStation breakdown
	for _, a := range records {
		switch a.Kind {
		case record.KindServiceDisruption:
			s.ServiceDisruptions++
			byLine.add(a.Line)
		case record.KindAccessibilityIssue:
			s.AccessibilityIssues++
			byStation.add(a.Station)
		default:
			s.MarkupAlerts++
		}
	}
	s.DisruptionsByLine = byLine.counts
	s.IssuesByStation = byStation.counts
	return s
}

type breakdown struct {
	counts []Count
}

func (b *breakdown) add(name string) {
	if name == "" {
		name = "Unknown"
	}
	for i := range b.counts {
		if b.counts[i].Name == name {
			b.counts[i].Count++
			return
		}
	}
	b.counts = append(b.counts, Count{Name: name, Count: 1})
}

// WriteSummary prints the parsing summary of records.
func WriteSummary(w io.Writer, records []record.Alert) {
	fmt.Fprintln(w, "\n=== PARSING SUMMARY ===")
	if len(records) == 0 {
		fmt.Fprintln(w, "No data to summarize.")
		return
	}

	s := Summarize(records)
	fmt.Fprintf(w, "Total items parsed: %d\n", s.Total)
	fmt.Fprintf(w, "Service disruptions: %d\n", s.ServiceDisruptions)
	fmt.Fprintf(w, "Accessibility issues: %d\n", s.AccessibilityIssues)
	fmt.Fprintf(w, "API alerts: %d\n", s.MarkupAlerts)

	if len(s.DisruptionsByLine) > 0 {
		fmt.Fprintln(w, "\nService disruptions by line:")
		for _, c := range s.DisruptionsByLine {
			fmt.Fprintf(w, "  %s: %d\n", c.Name, c.Count)
		}
	}
	if len(s.IssuesByStation) > 0 {
		fmt.Fprintln(w, "\nAccessibility issues by station:")
		for _, c := range s.IssuesByStation {
			fmt.Fprintf(w, "  %s: %d\n", c.Name, c.Count)
		}
	}
}
