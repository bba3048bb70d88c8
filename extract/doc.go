// Package extract is the field extraction library shared by the markup and
// bulletin pipelines.
//
// Every helper is a pure function over its input string. Patterns and the
// entity table are package-level values compiled once at start-up and never
// mutated, so all functions are safe for concurrent use.
//
// Helpers are total: a failed match yields the zero value (empty string,
// false, nil slice), never an error.
package extract
