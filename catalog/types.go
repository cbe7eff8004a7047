// SPDX-License-Identifier: MIT
// Package: fakebackend/catalog
//
// types.go — Defaults record and sentinel errors.

package catalog

import "errors"

// ErrCommandNotFound indicates no command matches the name and targets.
var ErrCommandNotFound = errors.New("catalog: command not found")

// Pulse and channel naming.
const (
	PulseDrive       = "drive_pulse"
	PulseCrossRes    = "cr_pulse"
	PulseMeasureTone = "measure_tone"

	InstrFrameChange = "fc"
	InstrAcquire     = "acquire"

	CommandMeasure = "measure"

	DriveChannelPrefix   = "d"
	ControlChannelPrefix = "u"
	MeasureChannelPrefix = "m"
)

// Measurement frequency estimates are spread evenly over this band (GHz).
const (
	MeasFreqLow  = 6.4
	MeasFreqHigh = 6.6
)

// AcquireDuration is the acquisition window in samples.
const AcquireDuration = 10

// PulseLibraryItem is a named sampled waveform.
type PulseLibraryItem struct {
	Name    string
	Samples []complex128
}

// PulseInstruction is one entry of a command schedule.
type PulseInstruction struct {
	Name       string
	Ch         string // channel, e.g. "d0", "u1", "m2"; empty for acquire
	T0         int    // start time in samples
	Phase      string // frame-change phase expression
	Duration   int    // acquire only
	Qubits     []int  // acquire only
	MemorySlot []int  // acquire only
}

// Command is the schedule of one instruction on its targets.
type Command struct {
	Name     string
	Qubits   []int
	Sequence []PulseInstruction
}

// Defaults is the instruction-catalog record of a backend.
type Defaults struct {
	QubitFreqEst []float64 // GHz, one per qubit
	MeasFreqEst  []float64 // GHz, one per qubit
	Buffer       int
	PulseLibrary []PulseLibraryItem
	CmdDef       []Command
	Measure      Command
}
