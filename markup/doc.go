// Package markup extracts alert records from the service-advisory JSON feed.
//
// The feed is an envelope with a Results list; every entry carries an Id, a Url
// and an Html fragment. Each fragment runs through a fixed, ordered list of
// field extractors:
//
//  1. route        "line N (...)"            -> Line, ServiceType=subway
//  2. stations     "A to B station(s) –"     -> LocationStart, LocationEnd
//  3. work type    "– <text> on|starting"    -> WorkType
//  4. title        span.field-satitle        -> Title
//  5. dates        start-effective-date span, then the text after the
//     start-date label wrapper, then any "Month D, YYYY"
//     -> StartDate; end-effective-date span -> EndDate
//  6. times        time mentions in Title    -> StartTime, EndTime (12-hour)
//  7. refinement   controlled vocabulary from Title overrides WorkType
//
// A record is kept only when it has a Line, a LocationStart or a StartDate.
//
// Times stay in the feed's 12-hour display form ("11 PM"); the bulletin
// package emits 24-hour times. Exporters in package converter accept both.
//
// The only error this package returns is *ParseError, for input that is not
// valid JSON. Missing, null or empty fragments produce no record.
package markup
