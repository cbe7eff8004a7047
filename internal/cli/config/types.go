// Package config loads the layered profile that drives the fakebackend CLI.
//
// Precedence (highest to lowest): explicitly set flags > FAKEBACKEND_*
// environment variables > profile file > defaults.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/fakebackend/backend"
	"github.com/katalvlaran/fakebackend/calibration"
)

// Output formats.
const (
	OutputTable    = "table"
	OutputMarkdown = "markdown"
	OutputCSV      = "csv"
)

// Report sections.
const (
	SectionSummary  = "summary"
	SectionTopology = "topology"
	SectionQubits   = "qubits"
	SectionGates    = "gates"
	SectionCommands = "commands"
	SectionAll      = "all"
)

// Defaults.
const (
	DefaultName    = "fake_backend"
	DefaultQubits  = 10
	DefaultSection = SectionSummary
	DefaultOutput  = OutputTable
	DefaultJobs    = 4
)

// DefaultCounts are the qubit counts swept when none are configured.
func DefaultCounts() []int { return []int{10, 40, 70} }

// ErrInvalidProfile indicates a profile value the CLI cannot act on.
var ErrInvalidProfile = errors.New("config: invalid profile")

// Profile is the resolved CLI configuration.
type Profile struct {
	Name             string   `koanf:"name" yaml:"name"`
	Qubits           int      `koanf:"qubits" yaml:"qubits"`
	BackendVersion   string   `koanf:"backend_version" yaml:"backend_version"`
	BasisGates       []string `koanf:"basis_gates" yaml:"basis_gates"`
	SingleQubitGates []string `koanf:"single_qubit_gates" yaml:"single_qubit_gates,omitempty"`
	CouplingMap      string   `koanf:"coupling_map" yaml:"coupling_map,omitempty"`

	T1           float64 `koanf:"t1" yaml:"t1"`
	T2           float64 `koanf:"t2" yaml:"t2"`
	Frequency    float64 `koanf:"frequency" yaml:"frequency"`
	ReadoutError float64 `koanf:"readout_error" yaml:"readout_error"`
	Dt           float64 `koanf:"dt" yaml:"dt"`

	Section string `koanf:"section" yaml:"section"`
	Output  string `koanf:"output" yaml:"output"`
	Verbose bool   `koanf:"verbose" yaml:"verbose"`

	Counts []int `koanf:"counts" yaml:"counts"`
	Jobs   int   `koanf:"jobs" yaml:"jobs"`
}

// Default returns the profile used when nothing else is configured.
func Default() Profile {
	return Profile{
		Name:           DefaultName,
		Qubits:         DefaultQubits,
		BackendVersion: backend.DefaultVersion,
		BasisGates:     backend.DefaultBasisGates(),
		T1:             calibration.DefaultT1,
		T2:             calibration.DefaultT2,
		Frequency:      calibration.DefaultFrequency,
		ReadoutError:   calibration.DefaultReadoutError,
		Dt:             calibration.DefaultDt,
		Section:        DefaultSection,
		Output:         DefaultOutput,
		Counts:         DefaultCounts(),
		Jobs:           DefaultJobs,
	}
}

// defaultMap is Default flattened into koanf keys.
func defaultMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"name":            d.Name,
		"qubits":          d.Qubits,
		"backend_version": d.BackendVersion,
		"basis_gates":     d.BasisGates,
		"t1":              d.T1,
		"t2":              d.T2,
		"frequency":       d.Frequency,
		"readout_error":   d.ReadoutError,
		"dt":              d.Dt,
		"section":         d.Section,
		"output":          d.Output,
		"verbose":         d.Verbose,
		"counts":          d.Counts,
		"jobs":            d.Jobs,
	}
}

var (
	outputs  = []string{OutputTable, OutputMarkdown, OutputCSV}
	sections = []string{SectionSummary, SectionTopology, SectionQubits, SectionGates, SectionCommands, SectionAll}
)

// Sections lists the accepted --section values.
func Sections() []string { return slices.Clone(sections) }

// Outputs lists the accepted --output values.
func Outputs() []string { return slices.Clone(outputs) }

// Validate checks the CLI-only fields. Device values are checked by the
// backend builder itself.
func (p *Profile) Validate() error {
	if !slices.Contains(outputs, p.Output) {
		return fmt.Errorf("%w: output %q (want one of %v)", ErrInvalidProfile, p.Output, outputs)
	}
	if !slices.Contains(sections, p.Section) {
		return fmt.Errorf("%w: section %q (want one of %v)", ErrInvalidProfile, p.Section, sections)
	}
	if p.Jobs < 1 {
		return fmt.Errorf("%w: jobs must be ≥ 1 (%d)", ErrInvalidProfile, p.Jobs)
	}
	if _, err := ParseCouplingMap(p.CouplingMap); err != nil {
		return err
	}

	return nil
}
