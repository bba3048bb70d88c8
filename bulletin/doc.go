// Package bulletin extracts records from free-text service bulletins.
//
// A bulletin is split into notices at every "On <Weekday>" or "This weekend"
// opener and at every line that begins "<Station>: Elevator" or
// "<Station>: Escalator". Each notice is classified exactly once:
//
//   - AccessibilityIssue when it reads "<Station>: Elevator|Escalator [id]
//     out of service <details>"; the location pair comes from "between X and
//     Y" or else "from X to Y" in the details.
//   - ServiceDisruption otherwise, when at least one of StartDate,
//     ServiceType or LocationStart could be recovered.
//
// Notices that fit neither are skipped. Results keep the order of the input.
//
// Bulletins name weekdays and days of the month but rarely the month or the
// year. Those come from the Extractor's Season, whose WeekendStart is also the
// date "This weekend" resolves to.
//
// Times are 24-hour HH:MM. "start by <time>" is when service resumes and sets
// EndTime only. "starting at <time>" sets StartTime, and EndTime falls back to
// 05:00 when the notice gives no resumption time.
package bulletin
