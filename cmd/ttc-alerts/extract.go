package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ttcalerts "github.com/theoremus-urban-solutions/ttc-alerts"
	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

func newMarkupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "markup [file|-]",
		Short: "Extract alerts from a service-advisory JSON feed",
		Long: `Extract alerts from a service-advisory JSON feed read from a file or stdin.

Examples:
  # Extract from a saved feed
  ttc-alerts markup advisories.json

  # Render a console table from stdin
  cat advisories.json | ttc-alerts markup - --format table`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runMarkup,
	}
}

func newBulletinCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bulletin [file|-]",
		Short: "Extract service disruptions and accessibility issues from bulletin text",
		Long: `Extract service disruptions and accessibility issues from free-text bulletin
read from a file or stdin.

Examples:
  # All records as JSON
  ttc-alerts bulletin weekend.txt

  # Only elevator and escalator outages, as CSV
  ttc-alerts bulletin weekend.txt --kind accessibility --format csv

  # SIRI Situation Exchange XML
  ttc-alerts bulletin weekend.txt --format siri-xml`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runBulletin,
	}
}

func (a *app) runMarkup(cmd *cobra.Command, args []string) error {
	data, err := newFetcher(cmd.InOrStdin()).fetch(inputArg(args))
	if err != nil {
		return err
	}
	alerts, err := a.parser.ParseAPIAlerts(data)
	if err != nil {
		return err
	}
	a.logger.Debug("parsed advisory feed", zap.Int("records", len(alerts)))
	return a.render(cmd, alerts, "markup")
}

func (a *app) runBulletin(cmd *cobra.Command, args []string) error {
	data, err := newFetcher(cmd.InOrStdin()).fetch(inputArg(args))
	if err != nil {
		return err
	}
	text := string(data)

	var alerts []record.Alert
	switch strings.ToLower(a.kind) {
	case ttcalerts.KindAll, "":
		alerts = a.parser.ParseTextAlerts(text)
	case ttcalerts.KindDisruptions:
		alerts = a.parser.ParseServiceDisruptions(text)
	case ttcalerts.KindAccessibility:
		alerts = a.parser.ParseAccessibilityIssues(text)
	default:
		return fmt.Errorf("unsupported kind %q", a.kind)
	}
	a.logger.Debug("parsed bulletin", zap.Int("records", len(alerts)))
	return a.render(cmd, alerts, "bulletin")
}

func (a *app) render(cmd *cobra.Command, alerts []record.Alert, source string) error {
	f, opts, err := a.renderOptions(source)
	if err != nil {
		return err
	}
	return a.parser.Render(cmd.OutOrStdout(), alerts, f, opts)
}
