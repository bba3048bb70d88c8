package formatter

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/ttc-alerts/siri"
)

func sampleResponse() *siri.SiriResponse {
	planned := true
	sx := siri.SituationExchangeDelivery{
		Version:           "2.0",
		ResponseTimestamp: "2025-07-25T10:00:00-04:00",
		Situations: []siri.PtSituationElement{
			{
				CreationTime:    "2025-07-25T10:00:00-04:00",
				ParticipantRef:  "TTC",
				SituationNumber: "abc",
				Source:          &siri.SituationSource{SourceType: siri.SourceTypeDirectReport},
				Progress:        siri.ProgressOpen,
				ValidityPeriod:  []siri.ValidityPeriod{{StartTime: "2025-07-25T23:00:00-04:00"}},
				Severity:        siri.SeverityNoService,
				ReportType:      siri.ReportTypeGeneral,
				Planned:         &planned,
				Keywords:        []string{"track work"},
				Summary:         siri.Text("en", "Line 1: Finch to Eglinton & more"),
				Affects: &siri.Affects{
					Networks: &siri.AffectedNetworks{AffectedNetwork: []siri.AffectedNetwork{{
						NetworkRef:  "TTC",
						VehicleMode: "metro",
						AffectedLine: []siri.AffectedLine{{
							LineRef: "TTC:Line:1",
							Sections: &siri.AffectedSections{AffectedSection: []siri.AffectedSection{{
								IndirectSectionRef: &siri.IndirectSectionRef{FirstQuayRef: "TTC:StopPlace:Finch", LastQuayRef: "TTC:StopPlace:Eglinton"},
							}}},
						}},
					}}},
					StopPlaces: &siri.AffectedStopPlaces{AffectedStopPlace: []siri.AffectedStopPlace{{
						StopPlaceRef: "TTC:StopPlace:Bessarion",
						AccessibilityAssessment: &siri.AccessibilityAssessment{
							Limitations: &siri.AccessibilityLimitation{
								WheelchairAccess: "false", StepFreeAccess: "false",
								EscalatorFreeAccess: "unknown", LiftFreeAccess: "unknown",
							},
						},
						AffectedComponents: &siri.AffectedComponents{AffectedComponent: []siri.AffectedComponent{{
							ComponentType: siri.ComponentLift,
						}}},
					}}},
				},
				InfoLinks: []siri.InfoLink{{Uri: "https://www.ttc.ca/?a=1&b=2", Label: siri.Text("en", "More information")}},
			},
		},
	}
	return siri.NewResponse(sx, "TTC")
}

func TestBuildXML_WellFormed(t *testing.T) {
	out := NewResponseBuilder().BuildXML(sampleResponse())

	dec := xml.NewDecoder(strings.NewReader(string(out)))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}
}

func TestBuildXML_Content(t *testing.T) {
	s := string(NewResponseBuilder().BuildXML(sampleResponse()))

	assert.Contains(t, s, `<Siri xmlns="http://www.siri.org.uk/siri" version="2.0">`)
	assert.Contains(t, s, `<SituationExchangeDelivery version="2.0">`)
	assert.Contains(t, s, "<ProducerRef>TTC</ProducerRef>")
	assert.Contains(t, s, "<Source><SourceType>directReport</SourceType></Source>")
	assert.Contains(t, s, "<UndefinedReason/>")
	assert.Contains(t, s, "<Planned>true</Planned>")
	assert.Contains(t, s, "<Keywords><Keyword>track work</Keyword></Keywords>")
	assert.Contains(t, s, `<Summary xml:lang="en">Line 1: Finch to Eglinton &amp; more</Summary>`)
	assert.Contains(t, s, "<FirstQuayRef>TTC:StopPlace:Finch</FirstQuayRef>")
	assert.Contains(t, s, "<MobilityImpairedAccess>false</MobilityImpairedAccess>")
	assert.Contains(t, s, "<LiftFreeAccess>unknown</LiftFreeAccess>")
	assert.Contains(t, s, "<ComponentType>lift</ComponentType>")
	assert.Contains(t, s, "<Uri>https://www.ttc.ca/?a=1&amp;b=2</Uri>")
	assert.NotContains(t, s, "<EndTime>")
}

func TestXMLEscape(t *testing.T) {
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt;O&apos;Connor &amp; Co&lt;/a&gt;", xmlEscape(`<a href="x">O'Connor & Co</a>`))
}
