package bulletin

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/ttc-alerts/extract"
)

// DefaultEndTime is when overnight service resumes unless a notice says
// otherwise.
const DefaultEndTime = "05:00"

const monthNames = `January|February|March|April|May|June|July|August|September|October|November|December`

var (
	weekdayDateRe = regexp.MustCompile(`(?i)(?:On\s+)?(?:Sunday|Monday|Tuesday|Wednesday|Thursday|Friday|Saturday),?\s+(?:(` + monthNames + `)\s+)?(\d{1,2})`)
	thisWeekendRe = regexp.MustCompile(`(?i)This\s+weekend`)
	timeTriggerRe = regexp.MustCompile(`(?i)(?:(start\s+by)|starting\s+at)\s+(` + extract.TimePattern + `)`)
	resumeTimeRe  = regexp.MustCompile(`(?i)start\s+by\s+(` + extract.TimePattern + `)`)
	dueToRe       = regexp.MustCompile(`(?i)due\s+to\s+([^.]+)`)
	shuttleClause = regexp.MustCompile(`(?i)\s*shuttle\s+buses.*$`)
)

// disruptionLocations is tried in order; the first match wins.
var disruptionLocations = extract.NewChain(
	"between_then_verb", `(?i)between\s+([A-Za-z\s]+?)\s+and\s+([A-Za-z\s]+?)(?:\s+stations?)?\s+(?:will|,|due)`,
	"between_stations", `(?i)between\s+([A-Za-z\s]+?)\s+and\s+([A-Za-z\s]+?)(?:\s+stations?)`,
	"no_subway_service", `(?i)no\s+subway\s+service\s+between\s+([A-Za-z\s]+?)\s+and\s+([A-Za-z\s]+?)(?:\s+stations?)?(?:\s*,)`,
)

type disruptionExtractor struct {
	name  string
	apply func(s Season, notice string, d *ServiceDisruption)
}

// disruptionExtractors all run over the whole notice; none depends on
// another's result.
var disruptionExtractors = []disruptionExtractor{
	{"dates", extractDates},
	{"times", extractTimes},
	{"service_type", extractServiceType},
	{"locations", extractLocations},
	{"work_type", extractWorkType},
}

func parseServiceDisruption(s Season, notice string) (*ServiceDisruption, bool) {
	d := &ServiceDisruption{}
	for _, x := range disruptionExtractors {
		x.apply(s, notice, d)
	}
	if !d.meaningful() {
		return nil, false
	}
	return d, true
}

// extractDates reads "On <Weekday>, [<Month>] <Day>". A "This weekend" mention
// anywhere in the notice overrides it with the season's weekend start.
func extractDates(s Season, notice string, d *ServiceDisruption) {
	if m := weekdayDateRe.FindStringSubmatch(notice); m != nil {
		if day, err := strconv.Atoi(m[2]); err == nil {
			d.StartDate = s.Date(monthByName(m[1]), day)
		}
	}
	if thisWeekendRe.MatchString(notice) {
		d.StartDate = s.WeekendDate()
	}
}

func monthByName(name string) time.Month {
	if name == "" {
		return 0
	}
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), name) {
			return m
		}
	}
	return 0
}

// extractTimes handles the two time triggers. "start by" gives the time
// service resumes, so it only sets EndTime. "starting at" sets StartTime and
// EndTime comes from a later "start by" or DefaultEndTime.
func extractTimes(_ Season, notice string, d *ServiceDisruption) {
	m := timeTriggerRe.FindStringSubmatch(notice)
	if m == nil {
		return
	}
	t := extract.ConvertTo24Hour(m[2])
	if m[1] != "" {
		d.EndTime = t
		return
	}
	d.StartTime = t
	if r := resumeTimeRe.FindStringSubmatch(notice); r != nil {
		d.EndTime = extract.ConvertTo24Hour(r[1])
	}
	if d.StartTime != "" && d.EndTime == "" {
		d.EndTime = DefaultEndTime
	}
}

func extractServiceType(_ Season, notice string, d *ServiceDisruption) {
	if st, ok := extract.ServiceTypeFromPhrase(notice); ok {
		d.ServiceType = st
	}
}

func extractLocations(_ Season, notice string, d *ServiceDisruption) {
	if m, ok := disruptionLocations.FirstMatch(notice); ok {
		d.LocationStart = extract.StripStationSuffix(m.Group(1))
		d.LocationEnd = extract.StripStationSuffix(m.Group(2))
	}
}

func extractWorkType(_ Season, notice string, d *ServiceDisruption) {
	if m := dueToRe.FindStringSubmatch(notice); m != nil {
		d.WorkType = shuttleClause.ReplaceAllString(strings.TrimSpace(m[1]), "")
	}
}
