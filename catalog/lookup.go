// SPDX-License-Identifier: MIT
// Package: fakebackend/catalog
//
// lookup.go — read helpers over a Defaults record.

package catalog

import "fmt"

// Command returns the command for name acting on exactly qubits, in order.
func (d Defaults) Command(name string, qubits ...int) (Command, error) {
	for _, c := range d.CmdDef {
		if c.Name == name && sameTargets(c.Qubits, qubits) {
			return c.clone(), nil
		}
	}

	return Command{}, fmt.Errorf("Command(%s%v): %w", name, qubits, ErrCommandNotFound)
}

// HasCommand reports whether Command(name, qubits...) would succeed.
func (d Defaults) HasCommand(name string, qubits ...int) bool {
	for _, c := range d.CmdDef {
		if c.Name == name && sameTargets(c.Qubits, qubits) {
			return true
		}
	}

	return false
}

// CommandQubits lists the targets of every command called name, in catalog order.
func (d Defaults) CommandQubits(name string) [][]int {
	var out [][]int
	for _, c := range d.CmdDef {
		if c.Name == name {
			out = append(out, append([]int(nil), c.Qubits...))
		}
	}

	return out
}

// Pulse returns the library waveform called name.
func (d Defaults) Pulse(name string) (PulseLibraryItem, bool) {
	for _, p := range d.PulseLibrary {
		if p.Name == name {
			return PulseLibraryItem{Name: p.Name, Samples: append([]complex128(nil), p.Samples...)}, true
		}
	}

	return PulseLibraryItem{}, false
}

// Duration returns the schedule length of c in samples: the latest end time
// over its pulses and acquisitions. Frame changes take no time.
func (d Defaults) Duration(c Command) int {
	end := 0
	for _, in := range c.Sequence {
		length := in.Duration
		if p, ok := d.Pulse(in.Name); ok {
			length = len(p.Samples)
		}
		if t := in.T0 + length; t > end {
			end = t
		}
	}

	return end
}

// Clone returns a deep copy.
func (d Defaults) Clone() Defaults {
	out := d
	out.QubitFreqEst = cloneFloats(d.QubitFreqEst)
	out.MeasFreqEst = cloneFloats(d.MeasFreqEst)
	if d.PulseLibrary != nil {
		out.PulseLibrary = make([]PulseLibraryItem, len(d.PulseLibrary))
		for i, p := range d.PulseLibrary {
			out.PulseLibrary[i] = PulseLibraryItem{Name: p.Name, Samples: append([]complex128(nil), p.Samples...)}
		}
	}
	if d.CmdDef != nil {
		out.CmdDef = make([]Command, len(d.CmdDef))
		for i, c := range d.CmdDef {
			out.CmdDef[i] = c.clone()
		}
	}
	out.Measure = d.Measure.clone()

	return out
}

func (c Command) clone() Command {
	c.Qubits = cloneInts(c.Qubits)
	if c.Sequence != nil {
		seq := make([]PulseInstruction, len(c.Sequence))
		for i, in := range c.Sequence {
			in.Qubits = cloneInts(in.Qubits)
			in.MemorySlot = cloneInts(in.MemorySlot)
			seq[i] = in
		}
		c.Sequence = seq
	}

	return c
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)

	return out
}

func cloneFloats(s []float64) []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s))
	copy(out, s)

	return out
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
