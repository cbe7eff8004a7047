// SPDX-License-Identifier: MIT
// Package: fakebackend/instruction
//
// enumerate.go — the shared instruction enumeration.
//
// Contract:
//   • Every basis gate must be in the gate table (else ErrUnsupportedGate).
//   • Duplicate basis entries are enumerated once, at their first position.
//   • With RestrictSingleQubit set, only one-qubit basis gates also named in
//     SingleQubitGates are enumerated; other names in the override are ignored.
//   • Empty basis ⇒ zero instructions.

package instruction

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/fakebackend/topology"
)

const methodEnumerate = "Enumerate"

// Instruction is one concrete (gate, target qubits) instance.
type Instruction struct {
	Gate   string
	Qubits []int
}

// Arity returns the number of target qubits.
func (in Instruction) Arity() int { return len(in.Qubits) }

// Name returns the calibration label: "u1_0" for one qubit, "cx0_1" for two.
func (in Instruction) Name() string {
	switch len(in.Qubits) {
	case OneQubit:
		return in.Gate + "_" + strconv.Itoa(in.Qubits[0])
	case TwoQubit:
		return in.Gate + strconv.Itoa(in.Qubits[0]) + "_" + strconv.Itoa(in.Qubits[1])
	default:
		return in.Gate
	}
}

// Targets reports whether the instruction acts on exactly qubits, in order.
func (in Instruction) Targets(qubits ...int) bool {
	if len(qubits) != len(in.Qubits) {
		return false
	}
	for i, q := range qubits {
		if in.Qubits[i] != q {
			return false
		}
	}

	return true
}

// Plan selects which basis gates are enumerated.
type Plan struct {
	// BasisGates is the device's native gate list, in configuration order.
	BasisGates []string
	// SingleQubitGates restricts the one-qubit portion when RestrictSingleQubit is set.
	SingleQubitGates []string
	// RestrictSingleQubit distinguishes "no override" from "override with an empty list".
	RestrictSingleQubit bool
}

// Split resolves the plan into one-qubit and two-qubit gate groups, each in
// basis order without duplicates.
func (p Plan) Split() (one, two []string, err error) {
	allowed := make(map[string]struct{}, len(p.SingleQubitGates))
	for _, g := range p.SingleQubitGates {
		allowed[g] = struct{}{}
	}

	seen := make(map[string]struct{}, len(p.BasisGates))
	for _, g := range p.BasisGates {
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}

		arity, aerr := Arity(g)
		if aerr != nil {
			return nil, nil, fmt.Errorf("Split: %w", aerr)
		}
		switch arity {
		case OneQubit:
			if p.RestrictSingleQubit {
				if _, ok := allowed[g]; !ok {
					continue
				}
			}
			one = append(one, g)
		case TwoQubit:
			two = append(two, g)
		}
	}

	return one, two, nil
}

// Enumerate expands the plan over n qubits and the coupling map cm.
// Complexity: O(|one|·n + |two|·|cm|).
func (p Plan) Enumerate(n int, cm topology.CouplingMap) ([]Instruction, error) {
	if err := topology.Validate(cm, n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodEnumerate, err)
	}
	one, two, err := p.Split()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEnumerate, err)
	}

	out := make([]Instruction, 0, Count(len(one), len(two), n, len(cm)))
	for _, g := range one {
		for q := 0; q < n; q++ {
			out = append(out, Instruction{Gate: g, Qubits: []int{q}})
		}
	}
	for _, g := range two {
		for _, e := range cm {
			out = append(out, Instruction{Gate: g, Qubits: e.Qubits()})
		}
	}

	return out, nil
}

// Count returns the catalog size law: one·n + two·edges.
func Count(one, two, n, edges int) int {
	return one*n + two*edges
}
