package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{"23:00", 23, 0, true},
		{"05:00", 5, 0, true},
		{"11 PM", 23, 0, true},
		{"11:30 p.m.", 23, 30, true},
		{"12 AM", 0, 0, true},
		{"6 AM", 6, 0, true},
		{"noon", 0, 0, false},
		{"", 0, 0, false},
		{"25:00", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, m, ok := parseClock(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.hour, h)
				assert.Equal(t, tt.minute, m)
			}
		})
	}
}

func TestParseRecordDate(t *testing.T) {
	d, ok := parseRecordDate("July 25, 2025", toronto)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.July, 25, 0, 0, 0, 0, toronto), d)

	d, ok = parseRecordDate("july  25,  2025", time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.July, d.Month())

	d, ok = parseRecordDate("Sunday, July 27, 2025", toronto)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.July, 27, 0, 0, 0, 0, toronto), d)

	_, ok = parseRecordDate("", time.UTC)
	assert.False(t, ok)
	_, ok = parseRecordDate("next Friday", time.UTC)
	assert.False(t, ok)
}

func TestResolveValidity(t *testing.T) {
	day := func(d, h, m int) time.Time { return time.Date(2025, time.July, d, h, m, 0, 0, toronto) }

	tests := []struct {
		name  string
		alert record.Alert
		start time.Time
		end   time.Time
	}{
		{
			name:  "overnight closure rolls to next morning",
			alert: record.Alert{StartDate: "July 25, 2025", StartTime: "23:00", EndTime: "05:00"},
			start: day(25, 23, 0),
			end:   day(26, 5, 0),
		},
		{
			name:  "resumption time only",
			alert: record.Alert{StartDate: "July 27, 2025", EndTime: "11:00"},
			start: day(27, 0, 0),
			end:   day(27, 11, 0),
		},
		{
			name:  "twelve-hour markup times",
			alert: record.Alert{StartDate: "July 25, 2025", StartTime: "11 PM", EndTime: "6 AM"},
			start: day(25, 23, 0),
			end:   day(26, 6, 0),
		},
		{
			name:  "end date covers the whole day",
			alert: record.Alert{StartDate: "July 26, 2025", EndDate: "July 27, 2025"},
			start: day(26, 0, 0),
			end:   day(28, 0, 0),
		},
		{
			name:  "start date only is open-ended",
			alert: record.Alert{StartDate: "July 26, 2025"},
			start: day(26, 0, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := resolveValidity(tt.alert, situationID(tt.alert), toronto, nil)
			require.True(t, ok)
			assert.Equal(t, tt.start, v.Start)
			assert.Equal(t, tt.end, v.End)
		})
	}
}

func TestResolveValidity_Warnings(t *testing.T) {
	w := NewWarningAggregator()

	_, ok := resolveValidity(record.Alert{}, "x", time.UTC, w)
	assert.False(t, ok)
	assert.Equal(t, 1, w.Count(WarningNoResolvableDate))

	v, ok := resolveValidity(record.Alert{StartDate: "July 25, 2025", StartTime: "late", EndTime: "soon"}, "x", time.UTC, w)
	require.True(t, ok)
	assert.False(t, v.HasEnd())
	assert.Equal(t, 2, w.Count(WarningUnparseableTime))
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = LoadLocation("Nowhere/Special")
	assert.Error(t, err)
}
