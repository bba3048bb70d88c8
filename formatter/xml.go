package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/ttc-alerts/siri"
)

// BuildXML serializes a SIRI response to XML
func (rb *responseBuilder) BuildXML(res *siri.SiriResponse) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("<Siri xmlns=\"http://www.siri.org.uk/siri\" version=\"2.0\">")
	sd := res.Siri.ServiceDelivery
	b.WriteString("<ServiceDelivery>")
	writeElement(&b, "ResponseTimestamp", sd.ResponseTimestamp)
	writeElement(&b, "ProducerRef", sd.ProducerRef)
	for _, sx := range sd.SituationExchangeDelivery {
		writeSituationExchangeXML(&b, sx)
	}
	b.WriteString("</ServiceDelivery>")
	b.WriteString("</Siri>")
	return []byte(b.String())
}

// writeElement writes <name>value</name>, or nothing for an empty value.
func writeElement(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString("<" + name + ">")
	b.WriteString(xmlEscape(value))
	b.WriteString("</" + name + ">")
}

func writeTextXML(b *strings.Builder, name string, texts []siri.NaturalLanguageString) {
	for _, t := range texts {
		b.WriteString("<" + name)
		if t.Lang != "" {
			b.WriteString(" xml:lang=\"" + xmlEscape(t.Lang) + "\"")
		}
		b.WriteString(">")
		b.WriteString(xmlEscape(t.Text))
		b.WriteString("</" + name + ">")
	}
}

func writeSituationExchangeXML(b *strings.Builder, sx siri.SituationExchangeDelivery) {
	if sx.Version != "" {
		b.WriteString("<SituationExchangeDelivery version=\"" + xmlEscape(sx.Version) + "\">")
	} else {
		b.WriteString("<SituationExchangeDelivery>")
	}
	writeElement(b, "ResponseTimestamp", sx.ResponseTimestamp)
	b.WriteString("<Situations>")
	for _, el := range sx.Situations {
		writeSituationXML(b, el)
	}
	b.WriteString("</Situations>")
	b.WriteString("</SituationExchangeDelivery>")
}

func writeSituationXML(b *strings.Builder, el siri.PtSituationElement) {
	b.WriteString("<PtSituationElement>")
	writeElement(b, "CreationTime", el.CreationTime)
	writeElement(b, "ParticipantRef", el.ParticipantRef)
	writeElement(b, "SituationNumber", el.SituationNumber)
	if el.Source != nil && el.Source.SourceType != "" {
		b.WriteString("<Source>")
		writeElement(b, "SourceType", el.Source.SourceType)
		b.WriteString("</Source>")
	}
	writeElement(b, "Progress", el.Progress)
	for _, vp := range el.ValidityPeriod {
		b.WriteString("<ValidityPeriod>")
		writeElement(b, "StartTime", vp.StartTime)
		writeElement(b, "EndTime", vp.EndTime)
		b.WriteString("</ValidityPeriod>")
	}
	if el.UndefinedReason != "" {
		writeElement(b, "UndefinedReason", el.UndefinedReason)
	} else {
		b.WriteString("<UndefinedReason/>")
	}
	writeElement(b, "Severity", el.Severity)
	writeElement(b, "ReportType", el.ReportType)
	if el.Planned != nil {
		writeElement(b, "Planned", strconv.FormatBool(*el.Planned))
	}
	if len(el.Keywords) > 0 {
		b.WriteString("<Keywords>")
		for _, k := range el.Keywords {
			writeElement(b, "Keyword", k)
		}
		b.WriteString("</Keywords>")
	}
	writeTextXML(b, "Summary", el.Summary)
	writeTextXML(b, "Description", el.Description)
	if el.Affects != nil {
		writeAffectsXML(b, el.Affects)
	}
	if len(el.InfoLinks) > 0 {
		b.WriteString("<InfoLinks>")
		for _, l := range el.InfoLinks {
			b.WriteString("<InfoLink>")
			writeElement(b, "Uri", l.Uri)
			writeTextXML(b, "Label", l.Label)
			b.WriteString("</InfoLink>")
		}
		b.WriteString("</InfoLinks>")
	}
	b.WriteString("</PtSituationElement>")
}

func writeAffectsXML(b *strings.Builder, affects *siri.Affects) {
	b.WriteString("<Affects>")
	if affects.Networks != nil && len(affects.Networks.AffectedNetwork) > 0 {
		b.WriteString("<Networks>")
		for _, network := range affects.Networks.AffectedNetwork {
			b.WriteString("<AffectedNetwork>")
			writeElement(b, "NetworkRef", network.NetworkRef)
			writeElement(b, "VehicleMode", network.VehicleMode)
			for _, line := range network.AffectedLine {
				b.WriteString("<AffectedLine>")
				writeElement(b, "LineRef", line.LineRef)
				writeTextXML(b, "LineName", line.LineName)
				if line.Sections != nil && len(line.Sections.AffectedSection) > 0 {
					b.WriteString("<Sections>")
					for _, section := range line.Sections.AffectedSection {
						b.WriteString("<AffectedSection>")
						if ref := section.IndirectSectionRef; ref != nil {
							b.WriteString("<IndirectSectionRef>")
							writeElement(b, "FirstQuayRef", ref.FirstQuayRef)
							writeElement(b, "LastQuayRef", ref.LastQuayRef)
							b.WriteString("</IndirectSectionRef>")
						}
						b.WriteString("</AffectedSection>")
					}
					b.WriteString("</Sections>")
				}
				b.WriteString("</AffectedLine>")
			}
			b.WriteString("</AffectedNetwork>")
		}
		b.WriteString("</Networks>")
	}
	if affects.StopPlaces != nil && len(affects.StopPlaces.AffectedStopPlace) > 0 {
		b.WriteString("<StopPlaces>")
		for _, sp := range affects.StopPlaces.AffectedStopPlace {
			writeStopPlaceXML(b, sp)
		}
		b.WriteString("</StopPlaces>")
	}
	b.WriteString("</Affects>")
}

func writeStopPlaceXML(b *strings.Builder, sp siri.AffectedStopPlace) {
	b.WriteString("<AffectedStopPlace>")
	writeElement(b, "StopPlaceRef", sp.StopPlaceRef)
	writeTextXML(b, "PlaceName", sp.PlaceName)
	if aa := sp.AccessibilityAssessment; aa != nil {
		b.WriteString("<AccessibilityAssessment>")
		writeElement(b, "MobilityImpairedAccess", strconv.FormatBool(aa.MobilityImpairedAccess))
		if lim := aa.Limitations; lim != nil {
			b.WriteString("<Limitations><AccessibilityLimitation>")
			writeElement(b, "WheelchairAccess", lim.WheelchairAccess)
			writeElement(b, "StepFreeAccess", lim.StepFreeAccess)
			writeElement(b, "EscalatorFreeAccess", lim.EscalatorFreeAccess)
			writeElement(b, "LiftFreeAccess", lim.LiftFreeAccess)
			b.WriteString("</AccessibilityLimitation></Limitations>")
		}
		b.WriteString("</AccessibilityAssessment>")
	}
	if ac := sp.AffectedComponents; ac != nil && len(ac.AffectedComponent) > 0 {
		b.WriteString("<AffectedComponents>")
		for _, c := range ac.AffectedComponent {
			b.WriteString("<AffectedComponent>")
			writeElement(b, "ComponentRef", c.ComponentRef)
			writeElement(b, "ComponentType", c.ComponentType)
			writeElement(b, "AccessFeatureType", c.AccessFeatureType)
			writeTextXML(b, "Description", c.Description)
			b.WriteString("</AffectedComponent>")
		}
		b.WriteString("</AffectedComponents>")
	}
	b.WriteString("</AffectedStopPlace>")
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
