// Package siri defines the SIRI Situation Exchange (SX) types that extracted
// alert records are exported as.
//
// SIRI is a European standard (CEN/TS 15531) for real-time public transport
// information. Only the SX module is modelled here, following the Entur
// Nordic Profile: situations carry a validity period, severity, natural
// language summary and description, and an Affects block naming the lines and
// stop places involved.
//
// All types include JSON and XML struct tags for serialization.
package siri
