package ttcalerts

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/ttc-alerts/formatter"
	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{" siri-xml ", FormatSIRIXML, false},
		{"gtfsrt-text", FormatGTFSRTText, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_ContentType(t *testing.T) {
	assert.Equal(t, "application/json", FormatSIRIJSON.ContentType())
	assert.Equal(t, "application/xml", FormatSIRIXML.ContentType())
	assert.Equal(t, "application/x-protobuf", FormatGTFSRT.ContentType())
	assert.Equal(t, "text/csv; charset=utf-8", FormatCSV.ContentType())
}

func renderString(t *testing.T, p *Parser, records []record.Alert, f Format, opts RenderOptions) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf, records, f, opts))
	return buf.String()
}

func TestRender_JSON(t *testing.T) {
	p := NewParser()
	records := p.ParseAccessibilityIssues(bulletinFixture(t))

	out := renderString(t, p, records, FormatJSON, RenderOptions{})
	var decoded []record.Alert
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, records, decoded)

	titled := renderString(t, p, records, FormatJSON, RenderOptions{Title: "Accessibility issues"})
	assert.True(t, strings.HasPrefix(titled, "\nAccessibility issues:\n["))
}

func TestRender_NoRecordsIsEmptyList(t *testing.T) {
	p := NewParser()
	assert.JSONEq(t, "[]", renderString(t, p, nil, FormatJSON, RenderOptions{}))
	assert.JSONEq(t, "[]", renderString(t, p, p.ParseTextAlerts(""), FormatJSON, RenderOptions{}))
}

func TestRender_CSVPicksLayoutFromRecords(t *testing.T) {
	p := NewParser()
	text := bulletinFixture(t)

	out := renderString(t, p, p.ParseServiceDisruptions(text), FormatCSV, RenderOptions{})
	assert.True(t, strings.HasPrefix(out, "Date,Time,Locations,Service,Work Type\n"))

	out = renderString(t, p, p.ParseAccessibilityIssues(text), FormatCSV, RenderOptions{})
	assert.True(t, strings.HasPrefix(out, "Station,Equipment,ID,Location,Description\n"))

	out = renderString(t, p, p.ParseTextAlerts(text), FormatCSV, RenderOptions{})
	assert.True(t, strings.HasPrefix(out, "id,url,line,"))

	alerts, err := p.ParseAPIAlerts(advisoriesFixture(t))
	require.NoError(t, err)
	out = renderString(t, p, alerts, FormatCSV, RenderOptions{})
	assert.True(t, strings.HasPrefix(out, "ID,Line,Stations,"))

	out = renderString(t, p, alerts, FormatCSV, RenderOptions{CSVKind: formatter.CSVGeneric})
	assert.True(t, strings.HasPrefix(out, "id,url,line,"))
}

func TestRender_TablePicksVariant(t *testing.T) {
	p := NewParser()

	alerts, err := p.ParseAPIAlerts(advisoriesFixture(t))
	require.NoError(t, err)
	assert.Contains(t, renderString(t, p, alerts, FormatTable, RenderOptions{}), "Total alerts: 2")

	out := renderString(t, p, p.ParseTextAlerts(bulletinFixture(t)), FormatTable, RenderOptions{})
	assert.Contains(t, out, "=== SERVICE DISRUPTIONS ===")
	assert.Contains(t, out, "=== ACCESSIBILITY ISSUES ===")
}

func TestRender_HTMLAndSummary(t *testing.T) {
	p := NewParser()
	records := p.ParseTextAlerts(bulletinFixture(t))

	html := renderString(t, p, records, FormatHTML, RenderOptions{Title: "Weekend"})
	assert.True(t, strings.HasPrefix(html, "<h2>Weekend</h2>"))

	summary := renderString(t, p, records, FormatSummary, RenderOptions{})
	assert.Contains(t, summary, "Total items parsed: 7")
}

func TestRender_SIRI(t *testing.T) {
	fixedClock(t)
	p := NewParser()
	records := p.ParseTextAlerts(bulletinFixture(t))

	xml := renderString(t, p, records, FormatSIRIXML, RenderOptions{Source: "bulletin"})
	assert.Equal(t, 7, strings.Count(xml, "<PtSituationElement>"))

	out := renderString(t, p, records, FormatSIRIJSON, RenderOptions{})
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded, "Siri")
}

func TestRender_GTFSRT(t *testing.T) {
	fixedClock(t)
	p := NewParser()
	records := p.ParseTextAlerts(bulletinFixture(t))

	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf, records, FormatGTFSRT, RenderOptions{}))
	var feed gtfsrtpb.FeedMessage
	require.NoError(t, proto.Unmarshal(buf.Bytes(), &feed))
	assert.Len(t, feed.GetEntity(), 7)

	text := renderString(t, p, records, FormatGTFSRTText, RenderOptions{})
	assert.Contains(t, text, "entity")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewParser().Render(&buf, nil, Format("pdf"), RenderOptions{}))
}
