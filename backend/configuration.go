// SPDX-License-Identifier: MIT
// Package: fakebackend/backend
//
// configuration.go — static device metadata record.

package backend

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/fakebackend/instruction"
	"github.com/katalvlaran/fakebackend/topology"
)

// GateConfig describes one basis gate and the targets it is calibrated on.
type GateConfig struct {
	Name        string
	Parameters  []string
	QASMDef     string
	CouplingMap [][]int
}

// UChannelLO maps a control channel to the LO of qubit Q scaled by Scale.
type UChannelLO struct {
	Q     int
	Scale complex128
}

// HamiltonianVar is one named numeric parameter of the device Hamiltonian.
type HamiltonianVar struct {
	Name  string
	Value float64
}

// Hamiltonian is the symbolic model of the device.
type Hamiltonian struct {
	HStr        []string
	Description string
	Qub         []int // levels per qubit
	Vars        []HamiltonianVar
}

// Var returns the value of the variable called name.
func (h Hamiltonian) Var(name string) (float64, bool) {
	for _, v := range h.Vars {
		if v.Name == name {
			return v.Value, true
		}
	}

	return 0, false
}

// Configuration is the static metadata record of a backend.
type Configuration struct {
	BackendName    string
	BackendVersion string
	NQubits        int
	BasisGates     []string
	Gates          []GateConfig
	CouplingMap    topology.CouplingMap
	MeasMap        [][]int

	Local       bool
	Simulator   bool
	Conditional bool
	OpenPulse   bool
	Memory      bool
	MaxShots    int

	Dt             float64 // ns
	Dtm            float64 // ns
	RepTimes       []float64
	MeasLevels     []int
	MeasKernels    []string
	Discriminators []string

	QubitLORange [][2]float64 // GHz
	MeasLORange  [][2]float64 // GHz
	UChannelLO   []UChannelLO
	NUChannels   int
	Hamiltonian  Hamiltonian
}

// Gate returns the GateConfig called name.
func (c Configuration) Gate(name string) (GateConfig, bool) {
	for _, g := range c.Gates {
		if g.Name == name {
			return g.clone(), true
		}
	}

	return GateConfig{}, false
}

// Clone returns a deep copy.
func (c Configuration) Clone() Configuration {
	out := c
	out.BasisGates = cloneStrings(c.BasisGates)
	if c.Gates != nil {
		out.Gates = make([]GateConfig, len(c.Gates))
		for i, g := range c.Gates {
			out.Gates[i] = g.clone()
		}
	}
	out.CouplingMap = c.CouplingMap.Clone()
	out.MeasMap = cloneIntLists(c.MeasMap)
	out.RepTimes = cloneSlice(c.RepTimes)
	out.MeasLevels = cloneSlice(c.MeasLevels)
	out.MeasKernels = cloneStrings(c.MeasKernels)
	out.Discriminators = cloneStrings(c.Discriminators)
	out.QubitLORange = cloneSlice(c.QubitLORange)
	out.MeasLORange = cloneSlice(c.MeasLORange)
	out.UChannelLO = cloneSlice(c.UChannelLO)
	out.Hamiltonian.HStr = cloneStrings(c.Hamiltonian.HStr)
	out.Hamiltonian.Qub = cloneSlice(c.Hamiltonian.Qub)
	out.Hamiltonian.Vars = cloneSlice(c.Hamiltonian.Vars)

	return out
}

func (g GateConfig) clone() GateConfig {
	g.Parameters = cloneStrings(g.Parameters)
	g.CouplingMap = cloneIntLists(g.CouplingMap)

	return g
}

// Static device metadata.
const (
	qubitLOHalfWidth = 0.5    // GHz around the qubit frequency
	measLOLow        = 6.0    // GHz
	measLOHigh       = 7.0    // GHz
	anharmonicity    = -0.33  // GHz
	driveStrength    = 0.1    // GHz
	repTime          = 1000.0 // µs
	qubitLevels      = 2
)

var hamiltonianTerms = []string{
	"_SUM[i,0,{n},wq{i}/2*(I{i}-Z{i})]",
	"_SUM[i,0,{n},delta{i}/2*O{i}*O{i}]",
	"_SUM[i,0,{n},-delta{i}/2*O{i}]",
	"_SUM[i,0,{n},omegad{i}*X{i}||D{i}]",
}

// assembleConfiguration fills the static record from the resolved inputs.
// instrs is the shared enumeration; it supplies each gate's calibrated targets.
func assembleConfiguration(name string, n int, cfg builderConfig, cm topology.CouplingMap, instrs []instruction.Instruction) (Configuration, error) {
	gates, err := gateConfigs(cfg.basisGates, instrs)
	if err != nil {
		return Configuration{}, err
	}

	all := make([]int, n)
	for q := range all {
		all[q] = q
	}

	freq := cfg.params.Frequency
	qubitLO := make([][2]float64, n)
	measLO := make([][2]float64, n)
	uchan := make([]UChannelLO, n)
	qub := make([]int, n)
	vars := make([]HamiltonianVar, 0, 3*n)
	for q := 0; q < n; q++ {
		qubitLO[q] = [2]float64{freq - qubitLOHalfWidth, freq + qubitLOHalfWidth}
		measLO[q] = [2]float64{measLOLow, measLOHigh}
		uchan[q] = UChannelLO{Q: q, Scale: complex(1, 0)}
		qub[q] = qubitLevels
		s := strconv.Itoa(q)
		vars = append(vars,
			HamiltonianVar{Name: "wq" + s, Value: 2 * math.Pi * freq},
			HamiltonianVar{Name: "delta" + s, Value: 2 * math.Pi * anharmonicity},
			HamiltonianVar{Name: "omegad" + s, Value: 2 * math.Pi * driveStrength},
		)
	}

	hstr := make([]string, len(hamiltonianTerms))
	upper := strconv.Itoa(n - 1)
	for i, t := range hamiltonianTerms {
		hstr[i] = strings.ReplaceAll(t, "{n}", upper)
	}

	return Configuration{
		BackendName:    name,
		BackendVersion: cfg.version,
		NQubits:        n,
		BasisGates:     cloneStrings(cfg.basisGates),
		Gates:          gates,
		CouplingMap:    cm.Clone(),
		MeasMap:        [][]int{all},
		Local:          true,
		Simulator:      false,
		Conditional:    false,
		OpenPulse:      true,
		Memory:         true,
		MaxShots:       DefaultMaxShots,
		Dt:             cfg.params.Dt,
		Dtm:            DefaultDtm,
		RepTimes:       []float64{repTime},
		MeasLevels:     []int{1, 2},
		MeasKernels:    []string{"boxcar"},
		Discriminators: []string{"linear_discriminator", "quadratic_discriminator"},
		QubitLORange:   qubitLO,
		MeasLORange:    measLO,
		UChannelLO:     uchan,
		NUChannels:     n,
		Hamiltonian: Hamiltonian{
			HStr:        hstr,
			Description: fmt.Sprintf("Transmon model of %d qubits with constant drive coupling.", n),
			Qub:         qub,
			Vars:        vars,
		},
	}, nil
}

// gateConfigs returns one GateConfig per distinct basis gate, in basis order.
func gateConfigs(basis []string, instrs []instruction.Instruction) ([]GateConfig, error) {
	targets := make(map[string][][]int, len(basis))
	for _, in := range instrs {
		targets[in.Gate] = append(targets[in.Gate], append([]int(nil), in.Qubits...))
	}

	seen := make(map[string]struct{}, len(basis))
	out := make([]GateConfig, 0, len(basis))
	for _, name := range basis {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		spec, err := instruction.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, GateConfig{
			Name:        name,
			Parameters:  spec.Params,
			QASMDef:     spec.QASMDef,
			CouplingMap: targets[name],
		})
	}

	return out, nil
}
