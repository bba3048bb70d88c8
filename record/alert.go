package record

// Kind discriminates bulletin-sourced records.
type Kind string

const (
	KindServiceDisruption  Kind = "service_disruption"
	KindAccessibilityIssue Kind = "accessibility_issue"
)

// ServiceType is the transit mode a disruption applies to.
type ServiceType string

const (
	ServiceSubway    ServiceType = "subway"
	ServiceBus       ServiceType = "bus"
	ServiceStreetcar ServiceType = "streetcar"
	ServiceTrain     ServiceType = "train"
)

// ParseServiceType maps a lower-case mode keyword to a ServiceType.
func ParseServiceType(s string) (ServiceType, bool) {
	switch ServiceType(s) {
	case ServiceSubway, ServiceBus, ServiceStreetcar, ServiceTrain:
		return ServiceType(s), true
	}
	return "", false
}

// EquipmentType is the accessibility equipment that is out of service.
type EquipmentType string

const (
	EquipmentElevator  EquipmentType = "elevator"
	EquipmentEscalator EquipmentType = "escalator"
)

// Controlled work-type vocabulary detected from markup titles.
const (
	WorkEarlyClosure        = "early closure"
	WorkLateOpening         = "late opening"
	WorkWeekendClosure      = "weekend closure"
	WorkFullDayClosure      = "full-day closure"
	WorkEarlyNightlyClosure = "early nightly closure"
)

// Alert is the unified output record of both pipelines.
//
// StartTime and EndTime are 24-hour HH:MM for bulletin records and keep the
// source 12-hour display form ("11 PM") for markup records.
type Alert struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url,omitempty"`

	Line          string      `json:"line,omitempty"`
	LocationStart string      `json:"location_start,omitempty"`
	LocationEnd   string      `json:"location_end,omitempty"`
	StartDate     string      `json:"start_date,omitempty"`
	EndDate       string      `json:"end_date,omitempty"`
	StartTime     string      `json:"start_time,omitempty"`
	EndTime       string      `json:"end_time,omitempty"`
	ServiceType   ServiceType `json:"service_type,omitempty"`
	WorkType      string      `json:"work_type,omitempty"`
	Title         string      `json:"title,omitempty"`
	Description   string      `json:"description,omitempty"`

	Kind          Kind          `json:"kind,omitempty"`
	Station       string        `json:"station,omitempty"`
	EquipmentType EquipmentType `json:"equipment_type,omitempty"`
	EquipmentID   string        `json:"equipment_id,omitempty"`
}

// Reader is the read-only view downstream formatters and exporters consume.
// Both the Alert struct and the bulletin notice types satisfy it.
type Reader interface {
	Record() Alert
}

// Record returns a copy of the alert.
func (a Alert) Record() Alert { return a }

// FromMarkup reports whether the record came from the markup pipeline.
func (a Alert) FromMarkup() bool { return a.Kind == "" }

// Records flattens readers into plain Alert values, preserving order.
func Records[R Reader](rs []R) []Alert {
	out := make([]Alert, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Record())
	}
	return out
}

// FilterKind returns the records of the given kind, preserving order.
func FilterKind(alerts []Alert, kind Kind) []Alert {
	out := make([]Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}
