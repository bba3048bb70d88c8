package bulletin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "weekday openers",
			text:     "On Sunday, first. On Monday, second.",
			expected: []string{"On Sunday, first.", "On Monday, second."},
		},
		{
			name:     "weekend opener mid-sentence",
			text:     "Closures ahead. This weekend, no service.",
			expected: []string{"Closures ahead.", "This weekend, no service."},
		},
		{
			name:     "case-insensitive opener",
			text:     "Buses will only operate on Friday.",
			expected: []string{"Buses will only operate", "on Friday."},
		},
		{
			name:     "station lines",
			text:     "Bessarion: Elevator out of service.\n\nKipling: Escalator out of service.",
			expected: []string{"Bessarion: Elevator out of service.", "Kipling: Escalator out of service."},
		},
		{
			name:     "indented station lines",
			text:     "  On Sunday, closure.\n  Union: Elevator out of service.\n",
			expected: []string{"On Sunday, closure.", "Union: Elevator out of service."},
		},
		{
			name:     "station opener only at line start",
			text:     "Notice 1, Bessarion: Elevator out of service.",
			expected: []string{"Notice 1, Bessarion: Elevator out of service."},
		},
		{
			name:     "no openers",
			text:     "  plain text  ",
			expected: []string{"plain text"},
		},
		{
			name:     "empty",
			text:     "",
			expected: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Segment(tt.text))
		})
	}
}
