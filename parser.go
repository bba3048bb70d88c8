package ttcalerts

import (
	"errors"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/ttc-alerts/bulletin"
	"github.com/theoremus-urban-solutions/ttc-alerts/converter"
	"github.com/theoremus-urban-solutions/ttc-alerts/extract"
	"github.com/theoremus-urban-solutions/ttc-alerts/internal/metrics"
	"github.com/theoremus-urban-solutions/ttc-alerts/markup"
	"github.com/theoremus-urban-solutions/ttc-alerts/record"
	"github.com/theoremus-urban-solutions/ttc-alerts/siri"
)

// timeNow stamps exports.
var timeNow = time.Now

// Parser runs both extraction pipelines and exports their records. It is safe
// for concurrent use.
type Parser struct {
	bulletin *bulletin.Extractor
	export   converter.ExportOptions
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// Option configures a Parser.
type Option func(*Parser)

// WithSeason anchors bulletin dates on s.
func WithSeason(s bulletin.Season) Option {
	return func(p *Parser) { p.bulletin = bulletin.New(s) }
}

// WithExportOptions sets the SIRI-SX and GTFS-Realtime export settings.
// Now and Warnings are ignored; every export stamps its own.
func WithExportOptions(o converter.ExportOptions) Option {
	return func(p *Parser) { p.export = o }
}

// WithLogger sets the logger export warnings are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// WithMetrics sets the metrics extraction runs are counted in.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Parser) { p.metrics = m }
}

// NewParser returns a Parser using the default season, UTC exports and a
// no-op logger unless configured otherwise.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		bulletin: bulletin.New(bulletin.DefaultSeason()),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Season returns the season bulletin dates are anchored on.
func (p *Parser) Season() bulletin.Season {
	return p.bulletin.Season()
}

// ParseAPIAlerts extracts records from the advisory feed. input may be a JSON
// string or byte slice, a markup.Envelope or a decoded JSON object. Invalid
// JSON returns a *markup.ParseError.
func (p *Parser) ParseAPIAlerts(input any) ([]record.Alert, error) {
	env, err := markup.DecodeAny(input)
	if err != nil {
		var perr *markup.ParseError
		if errors.As(err, &perr) {
			p.metrics.ObserveDecodeError()
		}
		return nil, err
	}
	alerts := markup.Parse(env)
	p.metrics.ObserveExtraction(metrics.PipelineMarkup, len(env.Results), alerts)
	return alerts, nil
}

// ParseTextAlerts extracts service disruptions and accessibility issues from
// bulletin text, in notice order.
func (p *Parser) ParseTextAlerts(text string) []record.Alert {
	segments := bulletin.Segment(text)
	notices := make([]bulletin.Notice, 0, len(segments))
	for _, s := range segments {
		if n, ok := p.bulletin.Classify(s); ok {
			notices = append(notices, n)
		}
	}
	alerts := record.Records(notices)
	p.metrics.ObserveExtraction(metrics.PipelineBulletin, len(segments), alerts)
	return alerts
}

// ParseServiceDisruptions returns only the service disruptions in text.
func (p *Parser) ParseServiceDisruptions(text string) []record.Alert {
	return record.FilterKind(p.ParseTextAlerts(text), record.KindServiceDisruption)
}

// ParseAccessibilityIssues returns only the accessibility issues in text.
func (p *Parser) ParseAccessibilityIssues(text string) []record.Alert {
	return record.FilterKind(p.ParseTextAlerts(text), record.KindAccessibilityIssue)
}

// CleanHTML decodes the HTML entities that appear in advisory text.
func (p *Parser) CleanHTML(text string) string {
	return extract.CleanHTMLEntities(text)
}

// SituationExchange exports records as a SIRI response with one
// SituationExchangeDelivery.
func (p *Parser) SituationExchange(records []record.Alert, source string) *siri.SiriResponse {
	opts := p.exportOptions()
	sx := converter.BuildSituationExchange(records, opts)
	p.reportWarnings(opts.Warnings, source)
	return siri.NewResponse(sx, opts.Codespace)
}

// AlertFeed exports records as a GTFS-Realtime FeedMessage of alerts.
func (p *Parser) AlertFeed(records []record.Alert, source string) *gtfsrtpb.FeedMessage {
	opts := p.exportOptions()
	feed := converter.BuildAlertFeed(records, opts)
	p.reportWarnings(opts.Warnings, source)
	return feed
}

func (p *Parser) exportOptions() converter.ExportOptions {
	opts := p.export
	opts.Now = timeNow()
	opts.Warnings = converter.NewWarningAggregator()
	return opts
}

func (p *Parser) reportWarnings(w *converter.WarningAggregator, source string) {
	agency := p.export.Codespace
	if agency == "" {
		agency = "UNKNOWN"
	}
	w.LogAll(p.logger, source, agency)
	for _, typ := range w.Types() {
		p.metrics.ObserveExportWarning(typ, w.Count(typ))
	}
}
