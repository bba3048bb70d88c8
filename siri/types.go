package siri

// SiriResponse is the top-level SIRI response structure
type SiriResponse struct {
	Siri SiriServiceDelivery `json:"Siri"`
}

// SiriServiceDelivery wraps the ServiceDelivery element
type SiriServiceDelivery struct {
	ServiceDelivery ServiceDelivery `json:"ServiceDelivery"`
}

// ServiceDelivery carries the situation deliveries of one response.
type ServiceDelivery struct {
	ResponseTimestamp         string                      `json:"ResponseTimestamp"`
	ProducerRef               string                      `json:"ProducerRef,omitempty"`
	SituationExchangeDelivery []SituationExchangeDelivery `json:"SituationExchangeDelivery"`
}

// NewResponse wraps a single SX delivery. ProducerRef falls back to "UNKNOWN".
func NewResponse(sx SituationExchangeDelivery, producerRef string) *SiriResponse {
	if producerRef == "" {
		producerRef = "UNKNOWN"
	}
	return &SiriResponse{
		Siri: SiriServiceDelivery{
			ServiceDelivery: ServiceDelivery{
				ResponseTimestamp:         sx.ResponseTimestamp,
				ProducerRef:               producerRef,
				SituationExchangeDelivery: []SituationExchangeDelivery{sx},
			},
		},
	}
}
