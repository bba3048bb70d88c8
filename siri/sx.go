package siri

// Progress values.
const (
	ProgressOpen   = "open"
	ProgressClosed = "closed"
)

// Severity values used for extracted alerts.
const (
	SeverityNoService = "noService"
	SeveritySlight    = "slight"
	SeverityNormal    = "normal"
)

// ReportTypeGeneral is the report type of planned, non-incident situations.
const ReportTypeGeneral = "general"

// SourceTypeDirectReport marks situations published by the operator itself.
const SourceTypeDirectReport = "directReport"

// Component types of affected station equipment.
const (
	ComponentLift      = "lift"
	ComponentEscalator = "escalator"
)

// SituationExchangeDelivery represents the SIRI-SX delivery structure
// following the Entur Nordic Profile of SIRI-SX.
type SituationExchangeDelivery struct {
	Version           string               `json:"version" xml:"version,attr"`
	ResponseTimestamp string               `json:"ResponseTimestamp" xml:"ResponseTimestamp"`
	Situations        []PtSituationElement `json:"Situations" xml:"Situations>PtSituationElement"`
}

// PtSituationElement represents a single public transport situation (alert/disruption)
type PtSituationElement struct {
	CreationTime    string                  `json:"CreationTime" xml:"CreationTime"`
	ParticipantRef  string                  `json:"ParticipantRef" xml:"ParticipantRef"`
	SituationNumber string                  `json:"SituationNumber" xml:"SituationNumber"`
	Source          *SituationSource        `json:"Source,omitempty" xml:"Source,omitempty"`
	Progress        string                  `json:"Progress" xml:"Progress"` // open|closed
	ValidityPeriod  []ValidityPeriod        `json:"ValidityPeriod" xml:"ValidityPeriod"`
	UndefinedReason string                  `json:"UndefinedReason,omitempty" xml:"UndefinedReason,omitempty"`
	Severity        string                  `json:"Severity,omitempty" xml:"Severity,omitempty"`
	ReportType      string                  `json:"ReportType" xml:"ReportType"` // general|incident
	Planned         *bool                   `json:"Planned,omitempty" xml:"Planned,omitempty"`
	Keywords        []string                `json:"Keywords,omitempty" xml:"Keywords>Keyword,omitempty"`
	Summary         []NaturalLanguageString `json:"Summary,omitempty" xml:"Summary,omitempty"`
	Description     []NaturalLanguageString `json:"Description,omitempty" xml:"Description,omitempty"`
	Affects         *Affects                `json:"Affects,omitempty" xml:"Affects,omitempty"`
	InfoLinks       []InfoLink              `json:"InfoLinks,omitempty" xml:"InfoLinks>InfoLink,omitempty"`
}

// SituationSource represents the source of the situation message
type SituationSource struct {
	SourceType string `json:"SourceType,omitempty" xml:"SourceType,omitempty"`
}

// ValidityPeriod represents a time period with start and optional end time
type ValidityPeriod struct {
	StartTime string `json:"StartTime" xml:"StartTime"`
	EndTime   string `json:"EndTime,omitempty" xml:"EndTime,omitempty"`
}

// NaturalLanguageString represents text with a language attribute
type NaturalLanguageString struct {
	Lang string `json:"lang,omitempty" xml:"lang,attr,omitempty"`
	Text string `json:"text" xml:",chardata"`
}

// Text returns a one-element list holding text in lang, or nil for empty text.
func Text(lang, text string) []NaturalLanguageString {
	if text == "" {
		return nil
	}
	return []NaturalLanguageString{{Lang: lang, Text: text}}
}

// InfoLink represents a URL with optional language attribute
type InfoLink struct {
	Uri   string                  `json:"Uri" xml:"Uri"`
	Label []NaturalLanguageString `json:"Label,omitempty" xml:"Label,omitempty"`
}

// Affects represents the scope of the situation
type Affects struct {
	Networks   *AffectedNetworks   `json:"Networks,omitempty" xml:"Networks,omitempty"`
	StopPlaces *AffectedStopPlaces `json:"StopPlaces,omitempty" xml:"StopPlaces,omitempty"`
}

// AffectedNetworks represents affected networks
type AffectedNetworks struct {
	AffectedNetwork []AffectedNetwork `json:"AffectedNetwork" xml:"AffectedNetwork"`
}

// AffectedNetwork represents an affected network
type AffectedNetwork struct {
	NetworkRef   string         `json:"NetworkRef,omitempty" xml:"NetworkRef,omitempty"`
	VehicleMode  string         `json:"VehicleMode,omitempty" xml:"VehicleMode,omitempty"`
	AffectedLine []AffectedLine `json:"AffectedLine,omitempty" xml:"AffectedLine,omitempty"`
}

// AffectedLine represents an affected line/route
type AffectedLine struct {
	LineRef  string                  `json:"LineRef" xml:"LineRef"`
	LineName []NaturalLanguageString `json:"LineName,omitempty" xml:"LineName,omitempty"`
	Sections *AffectedSections       `json:"Sections,omitempty" xml:"Sections,omitempty"`
}

// AffectedSections represents affected sections
type AffectedSections struct {
	AffectedSection []AffectedSection `json:"AffectedSection" xml:"AffectedSection"`
}

// AffectedSection represents an affected section
type AffectedSection struct {
	IndirectSectionRef *IndirectSectionRef `json:"IndirectSectionRef,omitempty" xml:"IndirectSectionRef,omitempty"`
}

// IndirectSectionRef is a section bounded by two stop places.
type IndirectSectionRef struct {
	FirstQuayRef string `json:"FirstQuayRef" xml:"FirstQuayRef"`
	LastQuayRef  string `json:"LastQuayRef" xml:"LastQuayRef"`
}

// AffectedStopPlaces represents affected stop places
type AffectedStopPlaces struct {
	AffectedStopPlace []AffectedStopPlace `json:"AffectedStopPlace" xml:"AffectedStopPlace"`
}

// AffectedStopPlace represents an affected stop place
type AffectedStopPlace struct {
	StopPlaceRef            string                   `json:"StopPlaceRef" xml:"StopPlaceRef"`
	PlaceName               []NaturalLanguageString  `json:"PlaceName,omitempty" xml:"PlaceName,omitempty"`
	AccessibilityAssessment *AccessibilityAssessment `json:"AccessibilityAssessment,omitempty" xml:"AccessibilityAssessment,omitempty"`
	AffectedComponents      *AffectedComponents      `json:"AffectedComponents,omitempty" xml:"AffectedComponents,omitempty"`
}

// AccessibilityAssessment represents accessibility information
type AccessibilityAssessment struct {
	MobilityImpairedAccess bool                     `json:"MobilityImpairedAccess" xml:"MobilityImpairedAccess"`
	Limitations            *AccessibilityLimitation `json:"Limitations,omitempty" xml:"Limitations,omitempty"`
}

// AccessibilityLimitation values are true, false or unknown.
type AccessibilityLimitation struct {
	WheelchairAccess    string `json:"WheelchairAccess" xml:"WheelchairAccess"`
	StepFreeAccess      string `json:"StepFreeAccess" xml:"StepFreeAccess"`
	EscalatorFreeAccess string `json:"EscalatorFreeAccess" xml:"EscalatorFreeAccess"`
	LiftFreeAccess      string `json:"LiftFreeAccess" xml:"LiftFreeAccess"`
}

// AffectedComponents represents affected components
type AffectedComponents struct {
	AffectedComponent []AffectedComponent `json:"AffectedComponent" xml:"AffectedComponent"`
}

// AffectedComponent is a piece of station equipment, such as a lift.
type AffectedComponent struct {
	ComponentRef      string                  `json:"ComponentRef,omitempty" xml:"ComponentRef,omitempty"`
	ComponentType     string                  `json:"ComponentType" xml:"ComponentType"`
	AccessFeatureType string                  `json:"AccessFeatureType,omitempty" xml:"AccessFeatureType,omitempty"`
	Description       []NaturalLanguageString `json:"Description,omitempty" xml:"Description,omitempty"`
}
