// SPDX-License-Identifier: MIT
// Package: fakebackend/backend
//
// config.go — internal builder configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all build knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//   • The first option violation is kept; later ones are ignored.
//
// Deterministic defaults:
//   • version      = "0.0.0"
//   • basisGates   = id, u1, u2, u3, cx
//   • singleQubit  = no restriction
//   • couplingMap  = topology.Generate(n)
//   • calibration  = calibration.DefaultParams()
//   • logger       = discard

package backend

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/fakebackend/calibration"
	"github.com/katalvlaran/fakebackend/topology"
)

// Documented defaults.
const (
	DefaultVersion  = "0.0.0"
	DefaultDtm      = 10.5 // ns
	DefaultMaxShots = 65536
)

// DefaultBasisGates returns a fresh copy of the default basis-gate list.
func DefaultBasisGates() []string {
	return []string{"id", "u1", "u2", "u3", "cx"}
}

// builderConfig aggregates all knobs used by Build.
// Slices are owned: options copy their inputs.
type builderConfig struct {
	version string

	basisGates []string

	singleQubitGates []string
	restrictSingle   bool // WithSingleQubitGates was applied

	couplingMap topology.CouplingMap
	couplingSet bool // WithCouplingMap was applied

	params calibration.Params

	logger *slog.Logger

	// err records the first option violation.
	err error
}

// newBuilderConfig starts from the defaults and applies opts in order.
// Complexity: O(len(opts)) time.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		version:    DefaultVersion,
		basisGates: DefaultBasisGates(),
		params:     calibration.DefaultParams(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// record keeps the first violation.
func (c *builderConfig) record(err error) {
	if c.err == nil {
		c.err = err
	}
}

// clone returns a copy whose slices do not alias c.
func (c builderConfig) clone() builderConfig {
	out := c
	out.basisGates = append([]string(nil), c.basisGates...)
	out.singleQubitGates = append([]string(nil), c.singleQubitGates...)
	out.couplingMap = c.couplingMap.Clone()

	return out
}
