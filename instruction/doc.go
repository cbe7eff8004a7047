// Package instruction holds the static gate table and the single enumeration
// step that both the calibration and the command catalog are derived from.
//
// Deriving properties and defaults from one []Instruction keeps the two
// records consistent by construction: same instruction set, same order, same
// per-instruction qubit targeting.
//
// Enumeration order:
//
//	1. one-qubit basis gates, in basis order   × qubits 0..n-1
//	2. two-qubit basis gates, in basis order   × coupling-map edges, stored order
//
// A two-qubit instruction targets its edge exactly as stored: (control, target).
package instruction
