// SPDX-License-Identifier: MIT
// Package: fakebackend/instruction
//
// schedule.go — sample geometry shared by calibration lengths and catalog
// schedules.

package instruction

// Schedule geometry in samples.
const (
	DrivePulseSamples = 4  // drive waveform length
	CrossResStart     = 10 // cross-resonance pulse offset in a two-qubit schedule
	TargetDriveStart  = 20 // target drive and frame-change offset
)

// ScheduleSamples returns the length in samples of the schedule of an
// instruction with the given arity: one drive pulse for a one-qubit gate, or
// the target drive ending a two-qubit schedule. Other arities yield 0.
func ScheduleSamples(arity int) int {
	switch arity {
	case OneQubit:
		return DrivePulseSamples
	case TwoQubit:
		return TargetDriveStart + DrivePulseSamples
	default:
		return 0
	}
}
