// Package record defines the Alert record shared by both extraction pipelines.
//
// An Alert is built empty, filled in place by a sequence of field extractors and
// then either emitted or dropped by the owning pipeline's meaningfulness filter.
// Every field is optional; an empty string means the source text did not clearly
// contain the value. Emitted records are never mutated again.
//
// Bulletin-sourced records carry a Kind (service_disruption or
// accessibility_issue). Markup-sourced records leave Kind empty.
package record
