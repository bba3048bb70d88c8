package ttcalerts

import (
	"fmt"
	"io"
	"strings"

	"github.com/theoremus-urban-solutions/ttc-alerts/formatter"
	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

// Format is an output rendering of a record list.
type Format string

const (
	FormatJSON       Format = "json"
	FormatTable      Format = "table"
	FormatCSV        Format = "csv"
	FormatHTML       Format = "html"
	FormatSummary    Format = "summary"
	FormatSIRIJSON   Format = "siri-json"
	FormatSIRIXML    Format = "siri-xml"
	FormatGTFSRT     Format = "gtfsrt"
	FormatGTFSRTText Format = "gtfsrt-text"
)

var formats = []Format{
	FormatJSON, FormatTable, FormatCSV, FormatHTML, FormatSummary,
	FormatSIRIJSON, FormatSIRIXML, FormatGTFSRT, FormatGTFSRTText,
}

// ParseFormat maps a format name to a Format. An empty name is FormatJSON.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatJSON, nil
	}
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q", s)
}

// ContentType is the HTTP media type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatTable, FormatSummary, FormatGTFSRTText:
		return "text/plain; charset=utf-8"
	case FormatSIRIXML:
		return "application/xml"
	case FormatGTFSRT:
		return "application/x-protobuf"
	default:
		return "application/json"
	}
}

// RenderOptions tune individual formats.
type RenderOptions struct {
	// Title heads HTML tables and JSON output. JSON carries no title line
	// when empty.
	Title string

	// CSVKind selects the CSV column set. Empty picks one from the records.
	CSVKind formatter.CSVKind

	// Source names the input in export warnings.
	Source string
}

// Render writes records to w in format f. No records render as an empty
// list, never as JSON null.
func (p *Parser) Render(w io.Writer, records []record.Alert, f Format, opts RenderOptions) error {
	if records == nil {
		records = []record.Alert{}
	}
	switch f {
	case FormatJSON, "":
		if opts.Title != "" {
			return formatter.WriteJSONWithTitle(w, opts.Title, records)
		}
		return formatter.WriteJSON(w, records)
	case FormatTable:
		if allFromMarkup(records) {
			formatter.AlertsTable(w, records)
		} else {
			formatter.ResultsTables(w, records)
		}
		return nil
	case FormatCSV:
		kind := opts.CSVKind
		if kind == "" {
			kind = csvKindFor(records)
		}
		return formatter.WriteCSV(w, records, kind)
	case FormatHTML:
		_, err := io.WriteString(w, formatter.FormatHTML(records, opts.Title)+"\n")
		return err
	case FormatSummary:
		formatter.WriteSummary(w, records)
		return nil
	case FormatSIRIJSON:
		return formatter.WriteJSON(w, p.SituationExchange(records, opts.Source))
	case FormatSIRIXML:
		_, err := w.Write(formatter.NewResponseBuilder().BuildXML(p.SituationExchange(records, opts.Source)))
		return err
	case FormatGTFSRT:
		data, err := formatter.BuildProto(p.AlertFeed(records, opts.Source))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatGTFSRTText:
		data, err := formatter.BuildProtoText(p.AlertFeed(records, opts.Source))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

func allFromMarkup(records []record.Alert) bool {
	for _, a := range records {
		if !a.FromMarkup() {
			return false
		}
	}
	return true
}

// csvKindFor picks the column set matching a homogeneous record list.
func csvKindFor(records []record.Alert) formatter.CSVKind {
	if len(records) == 0 || allFromMarkup(records) {
		return formatter.CSVAlerts
	}
	kind := records[0].Kind
	for _, a := range records[1:] {
		if a.Kind != kind {
			return formatter.CSVGeneric
		}
	}
	switch kind {
	case record.KindServiceDisruption:
		return formatter.CSVDisruptions
	case record.KindAccessibilityIssue:
		return formatter.CSVAccessibility
	default:
		return formatter.CSVGeneric
	}
}
