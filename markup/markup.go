package markup

import (
	"encoding/json"
	"fmt"

	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

// ParseString decodes a JSON-encoded feed and extracts its records.
func ParseString(s string) ([]record.Alert, error) {
	return ParseBytes([]byte(s))
}

// ParseBytes decodes a JSON-encoded feed and extracts its records. Invalid JSON
// returns a *ParseError and no records.
func ParseBytes(data []byte) ([]record.Alert, error) {
	env, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Parse(env), nil
}

// ParseAny accepts the feed in any of the forms callers hold it in: a JSON
// string or byte slice, an Envelope, or a generic decoded JSON object.
func ParseAny(input any) ([]record.Alert, error) {
	env, err := DecodeAny(input)
	if err != nil {
		return nil, err
	}
	return Parse(env), nil
}

// DecodeAny normalizes any input form accepted by ParseAny to an Envelope.
// A nil input decodes to an empty envelope.
func DecodeAny(input any) (*Envelope, error) {
	switch v := input.(type) {
	case nil:
		return &Envelope{}, nil
	case string:
		return Decode([]byte(v))
	case []byte:
		return Decode(v)
	case json.RawMessage:
		return Decode(v)
	case Envelope:
		return &v, nil
	case *Envelope:
		if v == nil {
			return &Envelope{}, nil
		}
		return v, nil
	case map[string]any:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		return Decode(data)
	default:
		return nil, &ParseError{Err: fmt.Errorf("unsupported input type %T", input)}
	}
}

// Parse extracts records from a decoded envelope, in entry order.
func Parse(env *Envelope) []record.Alert {
	alerts := []record.Alert{}
	if env == nil {
		return alerts
	}
	for _, e := range env.Results {
		if a, ok := ParseEntry(e); ok {
			alerts = append(alerts, a)
		}
	}
	return alerts
}

// ParseEntry runs the field extractors over one entry. The second result is
// false when the record carries none of Line, LocationStart or StartDate.
func ParseEntry(e Entry) (record.Alert, bool) {
	a := record.Alert{ID: e.ID, URL: e.URL}
	f := newFragment(e.HTML)
	for _, x := range extractors {
		x.apply(f, &a)
	}
	return a, Meaningful(a)
}

// Meaningful is the markup pipeline's keep predicate.
func Meaningful(a record.Alert) bool {
	return a.Line != "" || a.LocationStart != "" || a.StartDate != ""
}
