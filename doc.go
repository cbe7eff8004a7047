// Package fakebackend fabricates synthetic quantum backend descriptors: a
// complete, internally consistent description of a device that a
// circuit-compilation pipeline can target without real hardware.
//
// 🚀 What does a descriptor hold?
//
//	Configuration — basis gates, coupling map, measurement map, timing,
//	                LO ranges, Hamiltonian model
//	Properties    — T1, T2, frequency and readout error per qubit; error
//	                and length per gate instance
//	Defaults      — one pulse schedule per gate instance, the pulse library,
//	                the measure command and frequency estimates
//
// ✨ Guarantees
//
//   - Deterministic – the same name, qubit count and options always give
//     equal records; no clock, no randomness
//   - Consistent – calibration entries and catalog commands come from one
//     shared enumeration, so both hold one·n + two·|edges| entries in the
//     same order
//   - Immutable – a descriptor is built once and hands out deep copies
//
// Packages, leaves first:
//
//	topology/        — default coupling-map layout, validation, BFS connectivity
//	instruction/     — gate table and the shared instruction enumeration
//	calibration/     — Properties record synthesis and lookups
//	catalog/         — Defaults record (command catalog) and lookups
//	backend/         — options, Configuration record, Builder, Descriptor
//	cmd/fakebackend/ — CLI: build, sweep, profile init, version
//
// Default 10-qubit layout (staggered lattice, max degree 3):
//
//	0───1───2───3
//	│       │
//	4───5───6───7
//	    │
//	8───9
//
// Quick start:
//
//	d, err := backend.Build("Tashkent", 10)
//	if err != nil { ... }
//	fmt.Println(len(d.Defaults().CmdDef)) // 50
package fakebackend
