package ttcalerts

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/theoremus-urban-solutions/ttc-alerts/formatter"
)

// QueryError reports an unsupported request parameter.
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// Bulletin record selections.
const (
	KindAll           = "all"
	KindDisruptions   = "disruptions"
	KindAccessibility = "accessibility"
)

type requestParams struct {
	format  Format
	kind    string
	title   string
	csvKind formatter.CSVKind
}

// parseQuery reads format, kind, title and csv parameters. Parameter names
// are case-insensitive.
func parseQuery(q url.Values) (requestParams, error) {
	params := map[string]string{}
	for k, v := range q {
		if len(v) > 0 {
			params[strings.ToLower(k)] = v[0]
		}
	}

	var rp requestParams
	f, err := ParseFormat(params["format"])
	if err != nil {
		return rp, &QueryError{Msg: "Unsupported format: " + params["format"]}
	}
	rp.format = f

	kind, err := normalizeKind(params["kind"])
	if err != nil {
		return rp, err
	}
	rp.kind = kind
	rp.title = params["title"]

	if s := params["csv"]; s != "" {
		ck, err := formatter.ParseCSVKind(s)
		if err != nil {
			return rp, &QueryError{Msg: "Unsupported csv layout: " + s}
		}
		rp.csvKind = ck
	}
	return rp, nil
}

func normalizeKind(s string) (string, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", KindAll:
		return KindAll, nil
	case KindDisruptions, KindAccessibility:
		return s, nil
	}
	return "", &QueryError{Msg: "Unsupported kind: " + s}
}

func buildErrorPayload(status int, msg string) []byte {
	type apiError struct {
		Error struct {
			Status  int    `json:"status"`
			Message string `json:"message"`
		} `json:"error"`
	}
	var e apiError
	e.Error.Status = status
	e.Error.Message = msg
	b, _ := json.Marshal(e)
	return b
}
