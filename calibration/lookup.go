// SPDX-License-Identifier: MIT
// Package: fakebackend/calibration
//
// lookup.go — read helpers over a Properties record.
//
// Gate lookups match targets exactly: ("cx", 0, 1) never resolves to an
// entry stored for (1, 0).

package calibration

import "fmt"

// Qubit returns a copy of the parameter list of qubit q.
func (p Properties) Qubit(q int) ([]Nduv, error) {
	if q < 0 || q >= len(p.Qubits) {
		return nil, fmt.Errorf("Qubit(%d): %w", q, ErrQubitNotFound)
	}

	return append([]Nduv(nil), p.Qubits[q]...), nil
}

// QubitProperty returns the parameter called name of qubit q.
func (p Properties) QubitProperty(q int, name string) (Nduv, error) {
	params, err := p.Qubit(q)
	if err != nil {
		return Nduv{}, err
	}

	return find(params, name, fmt.Sprintf("QubitProperty(%d)", q))
}

// T1 returns the T1 value of qubit q in µs.
func (p Properties) T1(q int) (float64, error) { return p.qubitValue(q, NameT1) }

// T2 returns the T2 value of qubit q in µs.
func (p Properties) T2(q int) (float64, error) { return p.qubitValue(q, NameT2) }

// Frequency returns the frequency of qubit q in GHz.
func (p Properties) Frequency(q int) (float64, error) { return p.qubitValue(q, NameFrequency) }

// ReadoutError returns the readout error of qubit q.
func (p Properties) ReadoutError(q int) (float64, error) { return p.qubitValue(q, NameReadoutError) }

func (p Properties) qubitValue(q int, name string) (float64, error) {
	v, err := p.QubitProperty(q, name)
	if err != nil {
		return 0, err
	}

	return v.Value, nil
}

// Gate returns the entry for gate acting on exactly qubits.
func (p Properties) Gate(gate string, qubits ...int) (Gate, error) {
	for _, g := range p.Gates {
		if g.Gate == gate && sameTargets(g.Qubits, qubits) {
			return g.clone(), nil
		}
	}

	return Gate{}, fmt.Errorf("Gate(%s%v): %w", gate, qubits, ErrGateNotFound)
}

// GateError returns the gate_error of gate on qubits.
func (p Properties) GateError(gate string, qubits ...int) (float64, error) {
	return p.gateValue(NameGateError, gate, qubits)
}

// GateLength returns the gate_length (ns) of gate on qubits.
func (p Properties) GateLength(gate string, qubits ...int) (float64, error) {
	return p.gateValue(NameGateLength, gate, qubits)
}

func (p Properties) gateValue(param, gate string, qubits []int) (float64, error) {
	g, err := p.Gate(gate, qubits...)
	if err != nil {
		return 0, err
	}
	v, err := find(g.Parameters, param, "Gate("+g.Name+")")
	if err != nil {
		return 0, err
	}

	return v.Value, nil
}

// Clone returns a deep copy.
func (p Properties) Clone() Properties {
	out := p
	if p.Qubits != nil {
		out.Qubits = make([][]Nduv, len(p.Qubits))
		for i, q := range p.Qubits {
			out.Qubits[i] = append([]Nduv(nil), q...)
		}
	}
	if p.Gates != nil {
		out.Gates = make([]Gate, len(p.Gates))
		for i, g := range p.Gates {
			out.Gates[i] = g.clone()
		}
	}

	return out
}

func (g Gate) clone() Gate {
	g.Qubits = append([]int(nil), g.Qubits...)
	g.Parameters = append([]Nduv(nil), g.Parameters...)

	return g
}

func find(params []Nduv, name, where string) (Nduv, error) {
	for _, v := range params {
		if v.Name == name {
			return v, nil
		}
	}

	return Nduv{}, fmt.Errorf("%s: %q: %w", where, name, ErrPropertyNotFound)
}

func sameTargets(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
