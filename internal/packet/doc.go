// Package packet decodes and evaluates BITS transmissions.
//
// Ownership boundary:
// - packet tree model and kind/length-type enums
// - recursive decode over a bits.Reader
// - version-sum and value evaluation
// - encode back to hex for round trips
package packet
