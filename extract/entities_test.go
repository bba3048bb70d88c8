package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanHTMLEntities(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"amp and dash", "St George &amp; St Andrew &#8211; Early closure", "St George & St Andrew – Early closure"},
		{"quotes", "&quot;Line 1&quot; &#39;north&#39;", `"Line 1" 'north'`},
		{"angle brackets", "&lt;b&gt;", "<b>"},
		{"nbsp", "July&nbsp;25", "July 25"},
		{"unknown entity kept", "caf&eacute; &#9999;", "caf&eacute; &#9999;"},
		{"no entities", "plain text", "plain text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanHTMLEntities(tt.input))
		})
	}
}
