package bulletin

import (
	"fmt"
	"time"
)

// DateLayout is the "Month D, YYYY" form used for record dates.
const DateLayout = "January 2, 2006"

// Season anchors the partial dates found in bulletins.
type Season struct {
	// WeekendStart is the Friday "This weekend" refers to. Its month and year
	// complete "On Sunday, 27"-style dates that omit them.
	WeekendStart time.Time
}

// DefaultSeason is anchored on Friday, July 25, 2025.
func DefaultSeason() Season {
	return Season{WeekendStart: time.Date(2025, time.July, 25, 0, 0, 0, 0, time.UTC)}
}

// SeasonFor returns the season whose weekend starts on the first Friday on or
// after ref.
func SeasonFor(ref time.Time) Season {
	d := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	offset := (int(time.Friday) - int(d.Weekday()) + 7) % 7
	return Season{WeekendStart: d.AddDate(0, 0, offset)}
}

// ParseSeason parses a weekend start date in YYYY-MM-DD form.
func ParseSeason(s string) (Season, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Season{}, fmt.Errorf("invalid season weekend start %q: %w", s, err)
	}
	return Season{WeekendStart: t}, nil
}

// IsZero reports whether the season has no anchor date.
func (s Season) IsZero() bool {
	return s.WeekendStart.IsZero()
}

// Month is the month assumed when a notice names only a day.
func (s Season) Month() time.Month {
	return s.WeekendStart.Month()
}

// Year is the year every bulletin date is placed in.
func (s Season) Year() int {
	return s.WeekendStart.Year()
}

// Date formats a day of the season's year. A zero month means the season's
// own month. The day is not range-checked against the month.
func (s Season) Date(month time.Month, day int) string {
	if month == 0 {
		month = s.Month()
	}
	return fmt.Sprintf("%s %d, %d", month, day, s.Year())
}

// WeekendDate is the date "This weekend" resolves to.
func (s Season) WeekendDate() string {
	return s.WeekendStart.Format(DateLayout)
}
