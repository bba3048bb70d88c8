package formatter

import "github.com/theoremus-urban-solutions/ttc-alerts/record"

func markupRecords() []record.Alert {
	return []record.Alert{
		{
			ID:            "abc123def456",
			URL:           "https://www.ttc.ca/service-advisories/subway-service/abc",
			Line:          "1",
			LocationStart: "Finch",
			LocationEnd:   "Eglinton",
			StartDate:     "July 25, 2025",
			EndDate:       "July 27, 2025",
			StartTime:     "11 PM",
			EndTime:       "6 AM",
			WorkType:      "weekend closure",
			Title:         "Line 1 Finch to Eglinton weekend closure for track work",
		},
		{
			ID:    "short",
			Line:  "2",
			Title: "Line 2 <early> closure & more",
		},
	}
}

func bulletinRecords() []record.Alert {
	return []record.Alert{
		{
			Kind:          record.KindServiceDisruption,
			Line:          "1",
			StartDate:     "July 26, 2025",
			StartTime:     "23:00",
			EndTime:       "05:00",
			ServiceType:   record.ServiceSubway,
			LocationStart: "St Clair",
			LocationEnd:   "Lawrence",
			WorkType:      "track work",
		},
		{
			Kind:          record.KindAccessibilityIssue,
			Station:       "Bessarion",
			EquipmentType: record.EquipmentElevator,
			Description:   "out of service between concourse and platform",
			LocationStart: "concourse",
			LocationEnd:   "platform",
		},
		{
			Kind:          record.KindAccessibilityIssue,
			Station:       "Kipling",
			EquipmentType: record.EquipmentEscalator,
			EquipmentID:   "A2",
		},
	}
}
