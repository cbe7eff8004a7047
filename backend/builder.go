// SPDX-License-Identifier: MIT
// Package: fakebackend/backend
//
// builder.go — orchestrates topology, enumeration, calibration and catalog
// into one Descriptor.
//
// Contract:
//   • name must be non-empty and n ≥ 1, otherwise ErrConfiguration.
//   • The same inputs always yield equal records (no clock, no randomness).
//   • On any error no descriptor is returned.

package backend

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/fakebackend/calibration"
	"github.com/katalvlaran/fakebackend/catalog"
	"github.com/katalvlaran/fakebackend/instruction"
	"github.com/katalvlaran/fakebackend/topology"
)

const methodBuild = "Build"

// Builder holds the inputs of a build. Build may be called any number of
// times, from any goroutine; it never mutates the Builder.
type Builder struct {
	name string
	n    int
	cfg  builderConfig
}

// NewBuilder captures name, qubit count and options. Validation is deferred
// to Build so that every failure surfaces as an error.
func NewBuilder(name string, n int, opts ...Option) *Builder {
	return &Builder{name: name, n: n, cfg: newBuilderConfig(opts...)}
}

// Build is shorthand for NewBuilder(name, n, opts...).Build().
func Build(name string, n int, opts ...Option) (*Descriptor, error) {
	return NewBuilder(name, n, opts...).Build()
}

// Build fabricates the descriptor.
// Complexity: O(n + |basis|·(n + |cm|)).
func (b *Builder) Build() (*Descriptor, error) {
	cfg := b.cfg.clone()
	log := cfg.logger.With(slog.String("backend", b.name), slog.Int("qubits", b.n))

	if b.name == "" {
		return nil, configErrorf(methodBuild, ErrEmptyName)
	}
	if b.n < 1 {
		return nil, configErrorf(methodBuild, fmt.Errorf("%w (%d)", ErrInvalidQubitCount, b.n))
	}
	if cfg.err != nil {
		return nil, configErrorf(methodBuild, cfg.err)
	}

	cm, err := b.couplingMap(cfg)
	if err != nil {
		return nil, configErrorf(methodBuild, err)
	}
	log.Debug("coupling map resolved", slog.Int("edges", len(cm)), slog.Bool("explicit", cfg.couplingSet))

	plan := instruction.Plan{
		BasisGates:          cfg.basisGates,
		SingleQubitGates:    cfg.singleQubitGates,
		RestrictSingleQubit: cfg.restrictSingle,
	}
	instrs, err := plan.Enumerate(b.n, cm)
	if err != nil {
		return nil, configErrorf(methodBuild, err)
	}
	log.Debug("instructions enumerated", slog.Int("count", len(instrs)))

	props := calibration.Synthesize(b.name, cfg.version, b.n, instrs, cfg.params)

	defaults, err := catalog.Generate(props, instrs)
	if err != nil {
		return nil, configErrorf(methodBuild, err)
	}

	config, err := assembleConfiguration(b.name, b.n, cfg, cm, instrs)
	if err != nil {
		return nil, configErrorf(methodBuild, err)
	}
	log.Debug("descriptor built",
		slog.Int("gates", len(props.Gates)),
		slog.Int("commands", len(defaults.CmdDef)),
	)

	return &Descriptor{name: b.name, config: config, props: props, defaults: defaults}, nil
}

// couplingMap returns the explicit map after validation, or the generated default.
func (b *Builder) couplingMap(cfg builderConfig) (topology.CouplingMap, error) {
	if cfg.couplingSet {
		if err := topology.Validate(cfg.couplingMap, b.n); err != nil {
			return nil, err
		}
		return cfg.couplingMap, nil
	}

	return topology.Generate(b.n)
}
