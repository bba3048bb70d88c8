package markup

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope is the top-level feed object. A missing Results list decodes to nil
// and yields no records.
type Envelope struct {
	Results []Entry `json:"Results"`
}

// Entry is one advisory in the feed. A null Html decodes to "".
type Entry struct {
	ID   string `json:"Id"`
	URL  string `json:"Url"`
	HTML string `json:"Html"`
	Name string `json:"Name,omitempty"`
	Path string `json:"Path,omitempty"`
}

// ParseError reports markup input that could not be decoded as JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("markup: invalid alert feed JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Decode decodes the JSON form of the feed. Blank input decodes to an empty
// envelope.
func Decode(data []byte) (*Envelope, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &Envelope{}, nil
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &env, nil
}
