package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ttcalerts "github.com/theoremus-urban-solutions/ttc-alerts"
	"github.com/theoremus-urban-solutions/ttc-alerts/config"
	"github.com/theoremus-urban-solutions/ttc-alerts/formatter"
	"github.com/theoremus-urban-solutions/ttc-alerts/internal/logging"
	"github.com/theoremus-urban-solutions/ttc-alerts/internal/metrics"
)

// app holds the flags and the state built from them before a command runs.
type app struct {
	configPath string
	format     string
	kind       string
	csvKind    string
	title      string
	logLevel   string

	cfg     *config.AppConfig
	logger  *zap.Logger
	metrics *metrics.Metrics
	parser  *ttcalerts.Parser
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ttc-alerts",
		Short: "Extract structured alerts from TTC service advisories and bulletins",
		Long: `ttc-alerts turns TTC service-advisory feeds and free-text service bulletins
into structured alert records, and renders them as JSON, tables, CSV, HTML,
SIRI-SX or GTFS-Realtime.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default config.yml or ./config/config.yml)")
	flags.StringVarP(&a.format, "format", "f", "", "output format: json|table|csv|html|summary|siri-json|siri-xml|gtfsrt|gtfsrt-text")
	flags.StringVar(&a.kind, "kind", ttcalerts.KindAll, "bulletin records: all|disruptions|accessibility")
	flags.StringVar(&a.csvKind, "csv", "", "csv layout: alerts|disruptions|accessibility|generic")
	flags.StringVar(&a.title, "title", "", "title for html and json output")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(newMarkupCmd(a), newBulletinCmd(a), newServeCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadAppConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	a.cfg = cfg

	logger, err := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		return err
	}
	a.logger = logger

	season, err := cfg.SeasonValue()
	if err != nil {
		return err
	}
	export, err := cfg.ExportOptions()
	if err != nil {
		return err
	}
	a.metrics = metrics.New()
	a.parser = ttcalerts.NewParser(
		ttcalerts.WithSeason(season),
		ttcalerts.WithExportOptions(export),
		ttcalerts.WithLogger(logger),
		ttcalerts.WithMetrics(a.metrics),
	)
	return nil
}

// renderOptions resolves the output format: the flag, else the configured
// default.
func (a *app) renderOptions(source string) (ttcalerts.Format, ttcalerts.RenderOptions, error) {
	name := a.format
	if name == "" {
		name = a.cfg.Output.Format
	}
	f, err := ttcalerts.ParseFormat(name)
	if err != nil {
		return "", ttcalerts.RenderOptions{}, err
	}
	opts := ttcalerts.RenderOptions{Title: a.title, Source: source}
	if a.csvKind != "" {
		ck, err := formatter.ParseCSVKind(a.csvKind)
		if err != nil {
			return "", ttcalerts.RenderOptions{}, err
		}
		opts.CSVKind = ck
	}
	return f, opts, nil
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
