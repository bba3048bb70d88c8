package formatter

import (
	"html"
	"strings"

	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

// DefaultHTMLTitle heads HTML tables without an explicit title.
const DefaultHTMLTitle = "TTC Data"

// FormatHTML renders records as a titled HTML table with one column per
// record field that any record sets. Cells and the title are escaped.
func FormatHTML(records []record.Alert, title string) string {
	if title == "" {
		title = DefaultHTMLTitle
	}
	var b strings.Builder
	b.WriteString("<h2>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</h2>")
	if len(records) == 0 {
		b.WriteString("<p>No data available.</p>")
		return b.String()
	}

	fields := presentFields(records)
	b.WriteString("\n<table border=\"1\" cellpadding=\"5\" cellspacing=\"0\">\n")
	b.WriteString("  <thead>\n    <tr>\n")
	for _, f := range fields {
		b.WriteString("      <th>")
		b.WriteString(f.name)
		b.WriteString("</th>\n")
	}
	b.WriteString("    </tr>\n  </thead>\n  <tbody>\n")
	for _, a := range records {
		b.WriteString("    <tr>\n")
		for _, f := range fields {
			b.WriteString("      <td>")
			b.WriteString(html.EscapeString(f.value(a)))
			b.WriteString("</td>\n")
		}
		b.WriteString("    </tr>\n")
	}
	b.WriteString("  </tbody>\n</table>")
	return b.String()
}
