package markup

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/theoremus-urban-solutions/ttc-alerts/extract"
	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

var (
	routeRe    = regexp.MustCompile(`(?i)line\s+(\d+)\s*\([^)]+\)`)
	stationsRe = regexp.MustCompile(`(?i)([A-Za-z\s]+?)\s+to\s+([A-Za-z\s]+?)\s+stations?\s*[–-]`)
	workTypeRe = regexp.MustCompile(`(?i)[–-]\s*([^<]+?)(?:on\s+|starting)`)
)

const (
	titleSelector      = "span.field-satitle"
	startDateSelector  = "span.field-starteffectivedate"
	startLabelSelector = "span.sa-start-date-label-wrapper"
	endDateSelector    = "span.field-endeffectivedate"
)

// fragment is one entry's markup, raw and parsed.
type fragment struct {
	raw string
	doc *goquery.Document
}

func newFragment(raw string) *fragment {
	f := &fragment{raw: raw}
	if raw == "" {
		return f
	}
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw)); err == nil {
		f.doc = doc
	}
	return f
}

// spanText returns the trimmed text of the first element matching sel.
func (f *fragment) spanText(sel string) string {
	if f.doc == nil {
		return ""
	}
	s := f.doc.Find(sel).First()
	if s.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(s.Text())
}

// textAfter returns the text nodes that directly follow the first element
// matching sel, up to the next element.
func (f *fragment) textAfter(sel string) string {
	if f.doc == nil {
		return ""
	}
	s := f.doc.Find(sel).First()
	if s.Length() == 0 {
		return ""
	}
	var b strings.Builder
	for n := s.Nodes[0].NextSibling; n != nil && n.Type == html.TextNode; n = n.NextSibling {
		b.WriteString(n.Data)
	}
	return strings.TrimSpace(b.String())
}

// fieldExtractor fills part of a record from the fragment.
type fieldExtractor struct {
	name  string
	apply func(f *fragment, a *record.Alert)
}

// extractors run in this order; later steps read fields set by earlier ones.
var extractors = []fieldExtractor{
	{"route", extractRoute},
	{"stations", extractStations},
	{"work_type", extractWorkType},
	{"title", extractTitle},
	{"dates", extractDates},
	{"times", extractTimes},
	{"refine_work_type", refineWorkType},
}

func extractRoute(f *fragment, a *record.Alert) {
	if m := routeRe.FindStringSubmatch(f.raw); m != nil {
		a.Line = "Line " + m[1]
		a.ServiceType = record.ServiceSubway
	}
}

func extractStations(f *fragment, a *record.Alert) {
	if m := stationsRe.FindStringSubmatch(f.raw); m != nil {
		a.LocationStart = strings.TrimSpace(m[1])
		a.LocationEnd = strings.TrimSpace(m[2])
	}
}

func extractWorkType(f *fragment, a *record.Alert) {
	if m := workTypeRe.FindStringSubmatch(f.raw); m != nil {
		a.WorkType = strings.TrimSpace(extract.CleanHTMLEntities(m[1]))
	}
}

func extractTitle(f *fragment, a *record.Alert) {
	a.Title = f.spanText(titleSelector)
}

// startDateRules are tried in order; the first non-empty result wins. Dates
// keep the source wording, so "Sunday, July 27, 2025" stays as written.
var startDateRules = []struct {
	name string
	find func(f *fragment) string
}{
	{"start_effective_date", func(f *fragment) string { return f.spanText(startDateSelector) }},
	{"start_date_label", func(f *fragment) string { return f.textAfter(startLabelSelector) }},
	{"month_date", func(f *fragment) string { return extract.FindMonthDate(f.raw) }},
}

func extractDates(f *fragment, a *record.Alert) {
	for _, r := range startDateRules {
		if d := extract.NormalizeSpace(r.find(f)); d != "" {
			a.StartDate = d
			break
		}
	}
	a.EndDate = extract.NormalizeSpace(f.spanText(endDateSelector))
}

// extractTimes reads the title, not the raw fragment, and keeps 12-hour form.
func extractTimes(_ *fragment, a *record.Alert) {
	times := extract.ExtractTimes(a.Title)
	if len(times) > 0 {
		a.StartTime = extract.DisplayTime(times[0])
	}
	if len(times) > 1 {
		a.EndTime = extract.DisplayTime(times[1])
	}
}

// workTypeVocabulary is checked in order against the lower-cased title.
var workTypeVocabulary = []struct {
	phrase string
	term   string
}{
	{"early closure", record.WorkEarlyClosure},
	{"late opening", record.WorkLateOpening},
	{"full weekend closure", record.WorkWeekendClosure},
	{"full-day closure", record.WorkFullDayClosure},
	{"early nightly closure", record.WorkEarlyNightlyClosure},
}

func refineWorkType(_ *fragment, a *record.Alert) {
	if a.Title == "" {
		return
	}
	title := strings.ToLower(a.Title)
	for _, v := range workTypeVocabulary {
		if strings.Contains(title, v.phrase) {
			a.WorkType = v.term
			return
		}
	}
}
