package converter

import (
	"github.com/theoremus-urban-solutions/ttc-alerts/record"
	"github.com/theoremus-urban-solutions/ttc-alerts/siri"
)

// SIRIVersion is the version attribute of SX deliveries.
const SIRIVersion = "2.0"

// BuildSituationExchange exports records as a SIRI-SX delivery, one
// situation per record in input order.
func BuildSituationExchange(records []record.Alert, opts ExportOptions) siri.SituationExchangeDelivery {
	opts = opts.withDefaults()
	now := iso8601(opts.Now.In(opts.Location))
	elements := make([]siri.PtSituationElement, 0, len(records))
	ids := idSet{}
	for _, a := range records {
		elements = append(elements, buildSituation(a, ids.next(a), opts, now))
	}
	return siri.SituationExchangeDelivery{
		Version:           SIRIVersion,
		ResponseTimestamp: now,
		Situations:        elements,
	}
}

func buildSituation(a record.Alert, id string, opts ExportOptions, now string) siri.PtSituationElement {
	codespace := opts.Codespace
	cause, effect := alertCause(a), alertEffect(a)
	planned := true

	el := siri.PtSituationElement{
		CreationTime:    now,
		ParticipantRef:  codespace,
		SituationNumber: codespace + ":SituationNumber:" + id,
		Source:          &siri.SituationSource{SourceType: siri.SourceTypeDirectReport},
		Progress:        siri.ProgressOpen,
		ValidityPeriod:  []siri.ValidityPeriod{},
		Severity:        severityForEffect(effect),
		ReportType:      reportTypeForCause(cause),
		Planned:         &planned,
		Summary:         siri.Text(opts.Language, summary(a)),
		Description:     siri.Text(opts.Language, description(a)),
		Affects:         buildAffects(a, opts),
	}
	if a.WorkType != "" {
		el.Keywords = []string{a.WorkType}
	}

	if v, ok := resolveValidity(a, id, opts.Location, opts.Warnings); ok {
		period := siri.ValidityPeriod{StartTime: iso8601(v.Start)}
		if v.HasEnd() {
			period.EndTime = iso8601(v.End)
			if v.End.Before(opts.Now) {
				el.Progress = siri.ProgressClosed
			}
		}
		el.ValidityPeriod = append(el.ValidityPeriod, period)
	}

	if len(el.Summary) == 0 {
		opts.Warnings.Add(WarningNoSummary, id)
	}
	if a.Line == "" && a.Kind != record.KindAccessibilityIssue {
		opts.Warnings.Add(WarningNoLine, id)
	}
	if u := infoURL(a, opts.BaseURL); u != "" {
		el.InfoLinks = []siri.InfoLink{{Uri: u, Label: siri.Text(opts.Language, "More information")}}
	}
	return el
}

// buildAffects maps the record's line, section and stations. Route-level
// records get Networks > AffectedLine, with the section between two stations
// when both are known. Accessibility issues name the station and its broken
// equipment. Nil when nothing is known.
func buildAffects(a record.Alert, opts ExportOptions) *siri.Affects {
	codespace, lang := opts.Codespace, opts.Language
	var affects siri.Affects

	if a.Line != "" {
		line := siri.AffectedLine{
			LineRef:  lineRef(codespace, a.Line),
			LineName: siri.Text(lang, a.Line),
		}
		if a.Kind != record.KindAccessibilityIssue && a.LocationStart != "" && a.LocationEnd != "" {
			line.Sections = &siri.AffectedSections{AffectedSection: []siri.AffectedSection{{
				IndirectSectionRef: &siri.IndirectSectionRef{
					FirstQuayRef: stopPlaceRef(codespace, a.LocationStart),
					LastQuayRef:  stopPlaceRef(codespace, a.LocationEnd),
				},
			}}}
		}
		affects.Networks = &siri.AffectedNetworks{AffectedNetwork: []siri.AffectedNetwork{{
			NetworkRef:   codespace + ":Network:" + codespace,
			VehicleMode:  vehicleMode(a.ServiceType),
			AffectedLine: []siri.AffectedLine{line},
		}}}
	}

	var places []siri.AffectedStopPlace
	if a.Kind == record.KindAccessibilityIssue {
		if a.Station != "" {
			places = append(places, equipmentStopPlace(a, opts))
		}
	} else {
		for _, name := range []string{a.LocationStart, a.LocationEnd} {
			if name == "" {
				continue
			}
			places = append(places, siri.AffectedStopPlace{
				StopPlaceRef: stopPlaceRef(codespace, name),
				PlaceName:    siri.Text(lang, name),
			})
		}
	}
	if len(places) > 0 {
		affects.StopPlaces = &siri.AffectedStopPlaces{AffectedStopPlace: places}
	}

	if affects.Networks == nil && affects.StopPlaces == nil {
		return nil
	}
	return &affects
}

func equipmentStopPlace(a record.Alert, opts ExportOptions) siri.AffectedStopPlace {
	component := siri.ComponentEscalator
	if a.EquipmentType == record.EquipmentElevator {
		component = siri.ComponentLift
	}
	place := siri.AffectedStopPlace{
		StopPlaceRef: stopPlaceRef(opts.Codespace, a.Station),
		PlaceName:    siri.Text(opts.Language, a.Station),
		AffectedComponents: &siri.AffectedComponents{AffectedComponent: []siri.AffectedComponent{{
			ComponentRef:      a.EquipmentID,
			ComponentType:     component,
			AccessFeatureType: component,
			Description:       siri.Text(opts.Language, a.Description),
		}}},
	}
	if component == siri.ComponentLift {
		place.AccessibilityAssessment = &siri.AccessibilityAssessment{
			MobilityImpairedAccess: false,
			Limitations: &siri.AccessibilityLimitation{
				WheelchairAccess:    "false",
				StepFreeAccess:      "false",
				EscalatorFreeAccess: "unknown",
				LiftFreeAccess:      "unknown",
			},
		}
	}
	return place
}
