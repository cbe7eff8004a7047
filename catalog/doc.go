// Package catalog generates the Defaults record of a synthetic backend: the
// command-definition catalog, the pulse library it references, the
// measurement command and per-qubit frequency estimates.
//
// CmdDef holds exactly one Command per enumerated instruction, in enumeration
// order, so that
//
//	len(CmdDef) == |one-qubit basis gates|·n + |two-qubit basis gates|·|coupling map|
//
// The measurement command lives in its own field and is not counted.
//
// Schedules (t0 in samples):
//
//	one-qubit g on q      fc(d{q}, 0, phase -P0)  drive(d{q}, 0)
//	two-qubit g on (a,b)  drive(d{a}, 0)  cr(u{a}, 10)  drive(d{b}, 20)  fc(d{b}, 20, phase 2.1)
//	measure               acquire(all qubits, 0)  measure_tone(m{q}, 0) per qubit
//
// Command lookups match targets exactly as stored; a two-qubit command for
// (a,b) is never returned for (b,a).
package catalog
