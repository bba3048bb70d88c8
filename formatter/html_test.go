package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHTML_EscapesCellsAndTitle(t *testing.T) {
	out := FormatHTML(markupRecords(), "Alerts <today>")

	assert.True(t, strings.HasPrefix(out, "<h2>Alerts &lt;today&gt;</h2>"))
	assert.Contains(t, out, "<td>Line 2 &lt;early&gt; closure &amp; more</td>")
	assert.NotContains(t, out, "<early>")
}

func TestFormatHTML_OnlyPresentColumns(t *testing.T) {
	out := FormatHTML(bulletinRecords(), "")

	assert.Contains(t, out, "<h2>TTC Data</h2>")
	assert.Contains(t, out, "<th>station</th>")
	assert.Contains(t, out, "<th>equipment_id</th>")
	assert.NotContains(t, out, "<th>title</th>")
	assert.NotContains(t, out, "<th>url</th>")
	assert.Equal(t, 3, strings.Count(out, "<tr>")-1)
}

func TestFormatHTML_Empty(t *testing.T) {
	assert.Equal(t, "<h2>Empty</h2><p>No data available.</p>", FormatHTML(nil, "Empty"))
}
