// SPDX-License-Identifier: MIT
// Package: fakebackend/calibration
//
// types.go — Properties record, parameter set and sentinel errors.

package calibration

import (
	"errors"
	"time"

	"github.com/katalvlaran/fakebackend/instruction"
)

// Sentinel errors for record lookups.
var (
	// ErrQubitNotFound indicates a qubit index outside the record.
	ErrQubitNotFound = errors.New("calibration: qubit not found")

	// ErrPropertyNotFound indicates a missing named parameter.
	ErrPropertyNotFound = errors.New("calibration: property not found")

	// ErrGateNotFound indicates no gate entry matches the name and targets.
	ErrGateNotFound = errors.New("calibration: gate not found")
)

// Parameter names.
const (
	NameT1           = "T1"
	NameT2           = "T2"
	NameFrequency    = "frequency"
	NameReadoutError = "readout_error"
	NameGateError    = "gate_error"
	NameGateLength   = "gate_length"
)

// Units.
const (
	UnitMicroseconds = "us"
	UnitNanoseconds  = "ns"
	UnitGHz          = "GHz"
	UnitNone         = ""
)

// Defaults for every overridable number.
const (
	DefaultT1                   = 113.0 // µs
	DefaultT2                   = 150.2 // µs
	DefaultFrequency            = 4.8   // GHz
	DefaultReadoutError         = 0.04
	DefaultSingleQubitGateError = 0.001
	DefaultTwoQubitGateError    = 0.01
	DefaultDt                   = 1.33 // ns per sample
)

// Schedule lengths in samples, taken from the catalog schedule geometry;
// gate_length = samples × dt.
const (
	SingleQubitGateSamples = instruction.DrivePulseSamples
	TwoQubitGateSamples    = instruction.TargetDriveStart + instruction.DrivePulseSamples
)

// DefaultDate is the calibration timestamp used unless overridden.
var DefaultDate = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Nduv is one named, dated, unit-carrying value.
type Nduv struct {
	Date  time.Time
	Name  string
	Unit  string
	Value float64
}

// Gate is the calibration of one instruction.
type Gate struct {
	Gate       string // gate name, e.g. "cx"
	Name       string // instance label, e.g. "cx0_1"
	Qubits     []int
	Parameters []Nduv
}

// Properties is the calibration record of a backend.
type Properties struct {
	BackendName    string
	BackendVersion string
	LastUpdateDate time.Time
	Qubits         [][]Nduv
	Gates          []Gate
}

// Params are the inputs of Synthesize. Zero values are NOT replaced with
// defaults; use DefaultParams and override fields.
type Params struct {
	T1                   float64
	T2                   float64
	Frequency            float64
	ReadoutError         float64
	SingleQubitGateError float64
	TwoQubitGateError    float64
	Dt                   float64
	Date                 time.Time
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		T1:                   DefaultT1,
		T2:                   DefaultT2,
		Frequency:            DefaultFrequency,
		ReadoutError:         DefaultReadoutError,
		SingleQubitGateError: DefaultSingleQubitGateError,
		TwoQubitGateError:    DefaultTwoQubitGateError,
		Dt:                   DefaultDt,
		Date:                 DefaultDate,
	}
}
