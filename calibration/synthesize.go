// SPDX-License-Identifier: MIT
// Package: fakebackend/calibration
//
// synthesize.go — builds the Properties record.
//
// Contract:
//   • len(Qubits) == n; each entry lists T1, T2, frequency, readout_error.
//   • len(Gates) == len(instrs); Gates[i] calibrates instrs[i].
//   • Pure and total: no validation beyond n < 0 ⇒ zero qubit entries.

package calibration

import "github.com/katalvlaran/fakebackend/instruction"

// Synthesize builds the calibration record for n qubits and the shared
// instruction list.
// Complexity: O(n + len(instrs)).
func Synthesize(backendName, backendVersion string, n int, instrs []instruction.Instruction, p Params) Properties {
	if n < 0 {
		n = 0
	}

	props := Properties{
		BackendName:    backendName,
		BackendVersion: backendVersion,
		LastUpdateDate: p.Date,
		Qubits:         make([][]Nduv, n),
		Gates:          make([]Gate, len(instrs)),
	}

	for q := 0; q < n; q++ {
		props.Qubits[q] = []Nduv{
			{Date: p.Date, Name: NameT1, Unit: UnitMicroseconds, Value: p.T1},
			{Date: p.Date, Name: NameT2, Unit: UnitMicroseconds, Value: p.T2},
			{Date: p.Date, Name: NameFrequency, Unit: UnitGHz, Value: p.Frequency},
			{Date: p.Date, Name: NameReadoutError, Unit: UnitNone, Value: p.ReadoutError},
		}
	}

	for i, in := range instrs {
		gateErr := p.SingleQubitGateError
		if in.Arity() == instruction.TwoQubit {
			gateErr = p.TwoQubitGateError
		}
		samples := instruction.ScheduleSamples(in.Arity())
		props.Gates[i] = Gate{
			Gate:   in.Gate,
			Name:   in.Name(),
			Qubits: append([]int(nil), in.Qubits...),
			Parameters: []Nduv{
				{Date: p.Date, Name: NameGateError, Unit: UnitNone, Value: gateErr},
				{Date: p.Date, Name: NameGateLength, Unit: UnitNanoseconds, Value: float64(samples) * p.Dt},
			},
		}
	}

	return props
}
