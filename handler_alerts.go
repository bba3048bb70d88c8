package ttcalerts

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/ttc-alerts/internal/metrics"
	"github.com/theoremus-urban-solutions/ttc-alerts/markup"
	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 4 << 20

func (s *Server) handleMarkup(w http.ResponseWriter, r *http.Request) {
	rp, body, ok := s.readRequest(w, r)
	if !ok {
		return
	}
	alerts, err := s.cache.GetOrExtract(metrics.PipelineMarkup, body, func() ([]record.Alert, error) {
		return s.parser.ParseAPIAlerts(body)
	})
	if err != nil {
		s.writeExtractError(w, err)
		return
	}
	s.writeRecords(w, rp, alerts, "markup")
}

func (s *Server) handleBulletin(w http.ResponseWriter, r *http.Request) {
	rp, body, ok := s.readRequest(w, r)
	if !ok {
		return
	}
	alerts, err := s.cache.GetOrExtract(metrics.PipelineBulletin, body, func() ([]record.Alert, error) {
		return s.parser.ParseTextAlerts(string(body)), nil
	})
	if err != nil {
		s.writeExtractError(w, err)
		return
	}
	switch rp.kind {
	case KindDisruptions:
		alerts = record.FilterKind(alerts, record.KindServiceDisruption)
	case KindAccessibility:
		alerts = record.FilterKind(alerts, record.KindAccessibilityIssue)
	}
	s.writeRecords(w, rp, alerts, "bulletin")
}

// writeExtractError maps a malformed input to 400 and anything else to 500.
func (s *Server) writeExtractError(w http.ResponseWriter, err error) {
	var perr *markup.ParseError
	if errors.As(err, &perr) {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeError(w, http.StatusInternalServerError, err.Error())
}

func (s *Server) readRequest(w http.ResponseWriter, r *http.Request) (requestParams, []byte, bool) {
	rp, err := parseQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return rp, nil, false
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return rp, nil, false
		}
		s.writeError(w, http.StatusBadRequest, "failed to read request body")
		return rp, nil, false
	}
	return rp, body, true
}

func (s *Server) writeRecords(w http.ResponseWriter, rp requestParams, alerts []record.Alert, source string) {
	var buf bytes.Buffer
	opts := RenderOptions{Title: rp.title, CSVKind: rp.csvKind, Source: source}
	if err := s.parser.Render(&buf, alerts, rp.format, opts); err != nil {
		s.logger.Error("render failed", zap.String("format", string(rp.format)), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", rp.format.ContentType())
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buildErrorPayload(status, msg))
}
