// Package backend builds synthetic backend descriptors.
//
// A Descriptor bundles three records produced together by one Build call:
//
//	Configuration  static device metadata: basis gates, coupling map,
//	               measurement map, timing, LO ranges, Hamiltonian model
//	Properties     calibration numbers per qubit and per gate instance
//	Defaults       the command catalog with one schedule per gate instance
//
// Properties.Gates and Defaults.CmdDef are derived from the same instruction
// enumeration, so both hold exactly
//
//	|one-qubit basis gates|·n + |two-qubit basis gates|·|coupling map|
//
// entries in the same order. The default 10-qubit device has 50.
//
// Usage:
//
//	d, err := backend.Build("Tashkent", 10,
//		backend.WithBasisGates("u1", "u2", "cx"),
//		backend.WithQubitT1(99),
//	)
//	if errors.Is(err, backend.ErrConfiguration) { ... }
//	cfg := d.Configuration()
//
// Build is deterministic: equal inputs give equal records. The descriptor is
// immutable; its accessors hand out deep copies.
package backend
