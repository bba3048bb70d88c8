// Package converter exports extracted alert records to transit data
// standards.
//
// Two exports are supported:
//
//   - SIRI Situation Exchange, via BuildSituationExchange: one
//     PtSituationElement per record, with a validity period, severity,
//     summary, description and an Affects block naming the line, the section
//     between two stations, or the station and equipment of an accessibility
//     issue.
//   - GTFS-Realtime service alerts, via BuildAlertFeed: one FeedEntity per
//     record, with cause, effect, active period and informed entities.
//
// # Usage
//
//	records := bulletin.Extract(text)
//	loc, _ := converter.LoadLocation("America/Toronto")
//	warnings := converter.NewWarningAggregator()
//	opts := converter.ExportOptions{
//	    Codespace: "TTC",
//	    Location:  loc,
//	    Language:  "en",
//	    BaseURL:   "https://www.ttc.ca",
//	    Warnings:  warnings,
//	}
//	sx := converter.BuildSituationExchange(records, opts)
//	feed := converter.BuildAlertFeed(records, opts)
//	warnings.LogAll(logger, "bulletin", opts.Codespace)
//
// # Dates and times
//
// Record dates are "Month D, YYYY" strings and are resolved in the configured
// location. Times may be 24-hour ("23:00", bulletin records) or 12-hour
// display form ("11 PM", markup records); both are accepted. A missing start
// time means the start of the day. An end time that is not after the start
// rolls over to the next day, so an overnight closure from 23:00 to 05:00 ends
// the following morning. Records whose start date cannot be resolved are still
// exported, without a validity period, and counted by the WarningAggregator.
package converter
