// Package ttcalerts extracts structured transit alerts from TTC publications.
//
// Two sources are supported:
//   - the service-advisory feed, a JSON envelope whose entries carry HTML
//     fragments (see package markup)
//   - free-text service bulletins listing weekend closures and elevator or
//     escalator outages (see package bulletin)
//
// Parser is the entry point. It runs either pipeline, renders the resulting
// records in any supported Format, and exports them as SIRI-SX or
// GTFS-Realtime alerts. Server exposes the same operations over HTTP.
//
// Basic usage:
//
//	p := ttcalerts.NewParser()
//	alerts, err := p.ParseAPIAlerts(body)
//	if err != nil {
//	    // *markup.ParseError for invalid JSON
//	}
//	notices := p.ParseTextAlerts(text)
//	err = p.Render(os.Stdout, notices, ttcalerts.FormatSIRIXML, ttcalerts.RenderOptions{})
package ttcalerts
