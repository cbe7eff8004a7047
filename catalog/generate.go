// SPDX-License-Identifier: MIT
// Package: fakebackend/catalog
//
// generate.go — builds the Defaults record from the shared instruction list.
//
// Contract:
//   • len(CmdDef) == len(instrs); CmdDef[i] schedules instrs[i].
//   • QubitFreqEst[q] equals the frequency entry of qubit q in props.
//   • MeasFreqEst is evenly spaced over [MeasFreqLow, MeasFreqHigh].

package catalog

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/fakebackend/calibration"
	"github.com/katalvlaran/fakebackend/instruction"
)

const methodGenerate = "Generate"

// Frame-change phases.
const (
	singleQubitPhase = "-P0"
	crossResPhase    = "2.1"
)

// pulseLibrary returns a fresh copy of the waveforms referenced by schedules.
func pulseLibrary() []PulseLibraryItem {
	return []PulseLibraryItem{
		{Name: PulseDrive, Samples: drivePulse()},
		{Name: PulseCrossRes, Samples: []complex128{0.05, 0.1, 0.1, 0.05}},
		{Name: PulseMeasureTone, Samples: []complex128{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1}},
	}
}

// Generate builds the defaults record for the qubits described by props and
// the shared instruction list.
// Complexity: O(n + len(instrs)).
func Generate(props calibration.Properties, instrs []instruction.Instruction) (Defaults, error) {
	n := len(props.Qubits)

	qubitFreq := make([]float64, n)
	for q := 0; q < n; q++ {
		f, err := props.Frequency(q)
		if err != nil {
			return Defaults{}, fmt.Errorf("%s: %w", methodGenerate, err)
		}
		qubitFreq[q] = f
	}

	d := Defaults{
		QubitFreqEst: qubitFreq,
		MeasFreqEst:  linspace(MeasFreqLow, MeasFreqHigh, n),
		Buffer:       0,
		PulseLibrary: pulseLibrary(),
		CmdDef:       make([]Command, len(instrs)),
		Measure:      measureCommand(n),
	}
	for i, in := range instrs {
		d.CmdDef[i] = schedule(in)
	}

	return d, nil
}

// schedule returns the command for one instruction.
func schedule(in instruction.Instruction) Command {
	cmd := Command{Name: in.Gate, Qubits: append([]int(nil), in.Qubits...)}

	switch in.Arity() {
	case instruction.OneQubit:
		d := channel(DriveChannelPrefix, in.Qubits[0])
		cmd.Sequence = []PulseInstruction{
			{Name: InstrFrameChange, Ch: d, T0: 0, Phase: singleQubitPhase},
			{Name: PulseDrive, Ch: d, T0: 0},
		}
	case instruction.TwoQubit:
		control, target := in.Qubits[0], in.Qubits[1]
		cmd.Sequence = []PulseInstruction{
			{Name: PulseDrive, Ch: channel(DriveChannelPrefix, control), T0: 0},
			{Name: PulseCrossRes, Ch: channel(ControlChannelPrefix, control), T0: instruction.CrossResStart},
			{Name: PulseDrive, Ch: channel(DriveChannelPrefix, target), T0: instruction.TargetDriveStart},
			{Name: InstrFrameChange, Ch: channel(DriveChannelPrefix, target), T0: instruction.TargetDriveStart, Phase: crossResPhase},
		}
	}

	return cmd
}

// measureCommand acquires every qubit into its own memory slot.
func measureCommand(n int) Command {
	all := make([]int, n)
	for q := range all {
		all[q] = q
	}

	seq := make([]PulseInstruction, 0, n+1)
	seq = append(seq, PulseInstruction{
		Name:       InstrAcquire,
		T0:         0,
		Duration:   AcquireDuration,
		Qubits:     all,
		MemorySlot: append([]int(nil), all...),
	})
	for q := 0; q < n; q++ {
		seq = append(seq, PulseInstruction{Name: PulseMeasureTone, Ch: channel(MeasureChannelPrefix, q), T0: 0})
	}

	return Command{Name: CommandMeasure, Qubits: append([]int(nil), all...), Sequence: seq}
}

// drivePulse is a DrivePulseSamples-long ramp with a flat imaginary top.
func drivePulse() []complex128 {
	s := make([]complex128, instruction.DrivePulseSamples)
	for i := 1; i < len(s)-1; i++ {
		s[i] = 0.1i
	}

	return s
}

func channel(prefix string, q int) string {
	return prefix + strconv.Itoa(q)
}

// linspace returns n evenly spaced values over [lo, hi]; n == 1 yields [lo].
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}

	return out
}
