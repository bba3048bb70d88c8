package converter

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"

	"github.com/theoremus-urban-solutions/ttc-alerts/extract"
	"github.com/theoremus-urban-solutions/ttc-alerts/record"
	"github.com/theoremus-urban-solutions/ttc-alerts/siri"
)

// effectAccessibilityIssue is ACCESSIBILITY_ISSUE, added to the GTFS-RT
// Effect enum after the bindings' first release.
const effectAccessibilityIssue = gtfsrtpb.Alert_Effect(11)

var (
	noServiceRe   = regexp.MustCompile(`(?i)\bno\s+(?:\w+\s+)?service\b`)
	closureRe     = regexp.MustCompile(`(?i)\bclos(?:ure|ed|ing)\b`)
	constructRe   = regexp.MustCompile(`(?i)\bconstruction\b`)
	maintenanceRe = regexp.MustCompile(`(?i)\b(?:maintenance|track|work|repairs?|upgrades?|signal)\b`)
)

func wording(a record.Alert) string {
	return strings.Join([]string{a.WorkType, a.Title, a.Description}, " ")
}

// isSuspension reports whether the record describes service not running at
// all. Bulletin disruptions between two stations are suspensions of that
// section.
func isSuspension(a record.Alert) bool {
	if a.Kind == record.KindAccessibilityIssue {
		return false
	}
	text := wording(a)
	if closureRe.MatchString(text) || noServiceRe.MatchString(text) {
		return true
	}
	return a.Kind == record.KindServiceDisruption && a.LocationStart != "" && a.LocationEnd != ""
}

func alertCause(a record.Alert) gtfsrtpb.Alert_Cause {
	text := wording(a)
	switch {
	case a.Kind == record.KindAccessibilityIssue:
		return gtfsrtpb.Alert_TECHNICAL_PROBLEM
	case constructRe.MatchString(text):
		return gtfsrtpb.Alert_CONSTRUCTION
	case maintenanceRe.MatchString(text):
		return gtfsrtpb.Alert_MAINTENANCE
	default:
		return gtfsrtpb.Alert_UNKNOWN_CAUSE
	}
}

func alertEffect(a record.Alert) gtfsrtpb.Alert_Effect {
	switch {
	case a.Kind == record.KindAccessibilityIssue:
		return effectAccessibilityIssue
	case isSuspension(a):
		return gtfsrtpb.Alert_NO_SERVICE
	default:
		return gtfsrtpb.Alert_MODIFIED_SERVICE
	}
}

// severityForEffect maps a GTFS-RT effect to SIRI severity.
func severityForEffect(effect gtfsrtpb.Alert_Effect) string {
	switch effect {
	case gtfsrtpb.Alert_NO_SERVICE:
		return siri.SeverityNoService
	case effectAccessibilityIssue:
		return siri.SeveritySlight
	default:
		return siri.SeverityNormal
	}
}

func reportTypeForCause(cause gtfsrtpb.Alert_Cause) string {
	switch cause {
	case gtfsrtpb.Alert_STRIKE, gtfsrtpb.Alert_ACCIDENT, gtfsrtpb.Alert_POLICE_ACTIVITY, gtfsrtpb.Alert_MEDICAL_EMERGENCY:
		return "incident"
	default:
		return siri.ReportTypeGeneral
	}
}

// situationID is the markup Id, or for bulletin records a stable hash of the
// fields that identify the notice.
func situationID(a record.Alert) string {
	if a.ID != "" {
		return a.ID
	}
	h := fnv.New32a()
	for _, f := range []string{
		string(a.Kind), a.StartDate, a.StartTime, a.EndTime, a.Line,
		a.Station, string(a.EquipmentType), a.EquipmentID,
		a.LocationStart, a.LocationEnd, a.WorkType,
	} {
		h.Write([]byte(f))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("bulletin-%08x", h.Sum32())
}

// idSet hands out situation IDs unique within one export. A repeated ID gets
// an ordinal suffix, so the second copy of bulletin-xxxxxxxx becomes
// bulletin-xxxxxxxx-2.
type idSet map[string]bool

func (s idSet) next(a record.Alert) string {
	base := situationID(a)
	id := base
	for n := 2; s[id]; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	s[id] = true
	return id
}

// summary is the title, or a one-line headline built from the record.
func summary(a record.Alert) string {
	if a.Title != "" {
		return a.Title
	}
	if a.Kind == record.KindAccessibilityIssue {
		parts := []string{a.Station, string(a.EquipmentType)}
		if a.EquipmentID != "" {
			parts = append(parts, a.EquipmentID)
		}
		return strings.Join(append(parts, "out of service"), " ")
	}

	where := a.LocationStart
	if a.LocationStart != "" && a.LocationEnd != "" {
		where = a.LocationStart + " to " + a.LocationEnd
	}
	subject := a.Line
	if subject == "" && a.ServiceType != "" {
		subject = capitalize(string(a.ServiceType)) + " service"
	}
	switch {
	case subject != "" && where != "":
		return subject + ": " + where
	case subject != "":
		return subject
	default:
		return where
	}
}

func description(a record.Alert) string {
	if a.Description != "" {
		return a.Description
	}
	return capitalize(a.WorkType)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// infoURL makes a record URL absolute against baseURL.
func infoURL(a record.Alert, baseURL string) string {
	if a.URL == "" || baseURL == "" || !strings.HasPrefix(a.URL, "/") {
		return a.URL
	}
	return strings.TrimRight(baseURL, "/") + a.URL
}

func lineRef(codespace, line string) string {
	if id, ok := extract.LineRouteID(line); ok {
		return codespace + ":Line:" + id
	}
	return codespace + ":Line:" + refSlug(line)
}

func stopPlaceRef(codespace, name string) string {
	return codespace + ":StopPlace:" + refSlug(name)
}

func refSlug(name string) string {
	return strings.Join(strings.Fields(extract.CleanStationName(name)), "_")
}

// vehicleMode maps a service type to its SIRI vehicle mode.
func vehicleMode(st record.ServiceType) string {
	switch st {
	case record.ServiceSubway:
		return "metro"
	case record.ServiceBus:
		return "bus"
	case record.ServiceStreetcar:
		return "tram"
	case record.ServiceTrain:
		return "rail"
	default:
		return ""
	}
}
