package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

func TestWriteCSV_Disruptions(t *testing.T) {
	out, err := FormatCSV(record.FilterKind(bulletinRecords(), record.KindServiceDisruption), CSVDisruptions)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,Time,Locations,Service,Work Type", lines[0])
	assert.Equal(t, `"July 26, 2025",23:00-05:00,St Clair to Lawrence,subway,track work`, lines[1])
}

func TestWriteCSV_Accessibility(t *testing.T) {
	out, err := FormatCSV(record.FilterKind(bulletinRecords(), record.KindAccessibilityIssue), CSVAccessibility)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Station,Equipment,ID,Location,Description", lines[0])
	assert.Equal(t, "Bessarion,elevator,,concourse to platform,out of service between concourse and platform", lines[1])
	assert.Equal(t, "Kipling,escalator,A2,,", lines[2])
}

func TestWriteCSV_AlertsQuotesCommas(t *testing.T) {
	out, err := FormatCSV(markupRecords()[:1], CSVAlerts)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ID,Line,Stations,Work Type,Title,Start Date,End Date,Start Time,End Time,URL\n"))
	assert.Contains(t, out, `"July 25, 2025","July 27, 2025",11 PM,6 AM`)
}

func TestWriteCSV_GenericUsesRecordFields(t *testing.T) {
	out, err := FormatCSV(bulletinRecords()[:1], CSVGeneric)
	require.NoError(t, err)
	header := strings.SplitN(out, "\n", 2)[0]
	assert.True(t, strings.HasPrefix(header, "id,url,line,location_start"))
	assert.Contains(t, out, "service_disruption")
}

func TestWriteCSV_EmptyWritesNothing(t *testing.T) {
	out, err := FormatCSV(nil, CSVAlerts)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestParseCSVKind(t *testing.T) {
	k, err := ParseCSVKind("Disruptions")
	require.NoError(t, err)
	assert.Equal(t, CSVDisruptions, k)

	_, err = ParseCSVKind("spreadsheet")
	assert.Error(t, err)
}
