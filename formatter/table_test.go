package formatter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlertsTable(t *testing.T) {
	var buf bytes.Buffer
	AlertsTable(&buf, markupRecords())
	out := buf.String()

	assert.Contains(t, out, "Formatted TTC Alert Results:")
	assert.Contains(t, out, "abc123de")
	assert.NotContains(t, out, "abc123def456")
	assert.Contains(t, out, "July 25, 2025 - July 27, 2025")
	assert.Contains(t, out, notAvailable)
	assert.Contains(t, out, "Total alerts: 2")
}

func TestAlertsTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	AlertsTable(&buf, nil)
	assert.Contains(t, buf.String(), "No alerts to display.")
}

func TestResultsTables(t *testing.T) {
	var buf bytes.Buffer
	ResultsTables(&buf, bulletinRecords())
	out := buf.String()

	assert.Contains(t, out, "=== SERVICE DISRUPTIONS ===")
	assert.Contains(t, out, "St Clair to Lawrence")
	assert.Contains(t, out, "23:00-05:00")
	assert.Contains(t, out, "Active")
	assert.Contains(t, out, "=== ACCESSIBILITY ISSUES ===")
	assert.Contains(t, out, "Bessarion")
	assert.Contains(t, out, "Out of Service")
}

func TestResultsTables_OmitsEmptySection(t *testing.T) {
	var buf bytes.Buffer
	ResultsTables(&buf, bulletinRecords()[1:])
	out := buf.String()

	assert.NotContains(t, out, "SERVICE DISRUPTIONS")
	assert.Contains(t, out, "ACCESSIBILITY ISSUES")
}

func TestResultsTables_Empty(t *testing.T) {
	var buf bytes.Buffer
	ResultsTables(&buf, nil)
	assert.Contains(t, buf.String(), "No data to display.")
}
