// Package formatter renders extracted records and their exports.
//
// This package is organized into:
//   - json.go: indented JSON, with an optional title line, and SIRI JSON
//   - xml.go: SIRI XML serialization with proper escaping
//   - proto.go: GTFS-Realtime binary and text serialization
//   - csv.go: CSV with a fixed column set per record kind
//   - html.go: an HTML table with escaped cells
//   - table.go: console tables for markup and bulletin records
//   - summary.go: per-kind totals and breakdowns
//
// Formatters never modify records. Absent fields render as "N/A" in console
// tables and as empty strings in CSV and HTML.
//
// SIRI XML is written by hand for precise control over element order.
package formatter
