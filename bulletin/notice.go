package bulletin

import "github.com/theoremus-urban-solutions/ttc-alerts/record"

// Notice is one classified bulletin notice: a *ServiceDisruption or an
// *AccessibilityIssue.
type Notice interface {
	record.Reader
	Kind() record.Kind
}

// ServiceDisruption is a notice about reduced or suspended service.
type ServiceDisruption struct {
	StartDate     string
	EndDate       string
	StartTime     string
	EndTime       string
	ServiceType   record.ServiceType
	LocationStart string
	LocationEnd   string
	WorkType      string
}

// Kind implements Notice.
func (*ServiceDisruption) Kind() record.Kind { return record.KindServiceDisruption }

// Record implements record.Reader.
func (d *ServiceDisruption) Record() record.Alert {
	return record.Alert{
		Kind:          record.KindServiceDisruption,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		StartTime:     d.StartTime,
		EndTime:       d.EndTime,
		ServiceType:   d.ServiceType,
		LocationStart: d.LocationStart,
		LocationEnd:   d.LocationEnd,
		WorkType:      d.WorkType,
	}
}

func (d *ServiceDisruption) meaningful() bool {
	return d.StartDate != "" || d.ServiceType != "" || d.LocationStart != ""
}

// AccessibilityIssue is a notice about an elevator or escalator that is out
// of service.
type AccessibilityIssue struct {
	Station       string
	EquipmentType record.EquipmentType
	EquipmentID   string
	Description   string
	LocationStart string
	LocationEnd   string
}

// Kind implements Notice.
func (*AccessibilityIssue) Kind() record.Kind { return record.KindAccessibilityIssue }

// Record implements record.Reader.
func (a *AccessibilityIssue) Record() record.Alert {
	return record.Alert{
		Kind:          record.KindAccessibilityIssue,
		Station:       a.Station,
		EquipmentType: a.EquipmentType,
		EquipmentID:   a.EquipmentID,
		Description:   a.Description,
		LocationStart: a.LocationStart,
		LocationEnd:   a.LocationEnd,
	}
}
