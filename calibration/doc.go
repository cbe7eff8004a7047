// Package calibration synthesizes the Properties record of a synthetic
// backend: per-qubit coherence, frequency and readout numbers plus one
// gate-error entry per enumerated instruction.
//
// The numbers are deterministic defaults or caller overrides; they make no
// claim to physical realism. Every value is stamped with the same calibration
// date so two syntheses from equal inputs compare equal field by field.
//
// Qubit entries, in order:
//
//	T1            µs
//	T2            µs
//	frequency     GHz
//	readout_error (unitless)
//
// Gate entries carry gate_error and gate_length (ns). The gate list is built
// from the shared instruction enumeration, never independently, so it always
// matches the defaults' command catalog one to one.
package calibration
