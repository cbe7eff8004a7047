// SPDX-License-Identifier: MIT
// Package: fakebackend/backend
//
// options.go — functional options for the descriptor builder.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Options never panic. A meaningless value is recorded and Build returns
//     ErrOptionViolation (wrapped with ErrConfiguration).
//   • Slice arguments are copied; callers may reuse their buffers.

package backend

import (
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/fakebackend/topology"
)

// Option customizes a build by mutating a builderConfig before Build runs.
type Option func(*builderConfig)

// WithVersion sets the backend version string. Empty is a violation.
func WithVersion(v string) Option {
	return func(c *builderConfig) {
		if v == "" {
			c.record(violationf("version cannot be empty"))
			return
		}
		c.version = v
	}
}

// WithBasisGates replaces the native gate list. Repeated names are kept once,
// at their first position. An empty list is allowed and yields a device with
// no gate entries and an empty command catalog.
func WithBasisGates(gates ...string) Option {
	cp := uniqueStrings(gates)
	return func(c *builderConfig) {
		c.basisGates = cp
	}
}

// WithSingleQubitGates restricts which one-qubit basis gates receive
// calibration and catalog entries. Names outside the basis are ignored.
func WithSingleQubitGates(gates ...string) Option {
	cp := uniqueStrings(gates)
	return func(c *builderConfig) {
		c.singleQubitGates = cp
		c.restrictSingle = true
	}
}

// WithCouplingMap supplies an explicit coupling map. It is validated at build
// time and otherwise used verbatim; the default layout is bypassed.
func WithCouplingMap(cm topology.CouplingMap) Option {
	cp := cm.Clone()
	return func(c *builderConfig) {
		c.couplingMap = cp
		c.couplingSet = true
	}
}

// WithQubitT1 sets the T1 value (µs, > 0) applied to every qubit.
func WithQubitT1(us float64) Option {
	return func(c *builderConfig) {
		if !(us > 0) {
			c.record(violationf("T1 must be positive (%v)", us))
			return
		}
		c.params.T1 = us
	}
}

// WithQubitT2 sets the T2 value (µs, > 0) applied to every qubit.
func WithQubitT2(us float64) Option {
	return func(c *builderConfig) {
		if !(us > 0) {
			c.record(violationf("T2 must be positive (%v)", us))
			return
		}
		c.params.T2 = us
	}
}

// WithQubitFrequency sets the qubit frequency (GHz, > 0) applied to every qubit.
func WithQubitFrequency(ghz float64) Option {
	return func(c *builderConfig) {
		if !(ghz > 0) {
			c.record(violationf("frequency must be positive (%v)", ghz))
			return
		}
		c.params.Frequency = ghz
	}
}

// WithQubitReadoutError sets the readout error in [0, 1] applied to every qubit.
func WithQubitReadoutError(p float64) Option {
	return func(c *builderConfig) {
		if !isRate(p) {
			c.record(violationf("readout error must be in [0,1] (%v)", p))
			return
		}
		c.params.ReadoutError = p
	}
}

// WithSingleQubitGateError sets the error rate of every one-qubit gate entry.
func WithSingleQubitGateError(p float64) Option {
	return func(c *builderConfig) {
		if !isRate(p) {
			c.record(violationf("one-qubit gate error must be in [0,1] (%v)", p))
			return
		}
		c.params.SingleQubitGateError = p
	}
}

// WithTwoQubitGateError sets the error rate of every two-qubit gate entry.
func WithTwoQubitGateError(p float64) Option {
	return func(c *builderConfig) {
		if !isRate(p) {
			c.record(violationf("two-qubit gate error must be in [0,1] (%v)", p))
			return
		}
		c.params.TwoQubitGateError = p
	}
}

// WithDt sets the sample time in ns (> 0). Gate lengths scale with it.
func WithDt(ns float64) Option {
	return func(c *builderConfig) {
		if !(ns > 0) {
			c.record(violationf("dt must be positive (%v)", ns))
			return
		}
		c.params.Dt = ns
	}
}

// WithCalibrationDate stamps every calibration value with t (stored in UTC).
// The zero time is a violation.
func WithCalibrationDate(t time.Time) Option {
	return func(c *builderConfig) {
		if t.IsZero() {
			c.record(violationf("calibration date cannot be zero"))
			return
		}
		c.params.Date = t.UTC()
	}
}

// WithLogger routes build diagnostics to l. Nil restores the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *builderConfig) {
		if l == nil {
			l = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		c.logger = l
	}
}

// isRate reports p ∈ [0, 1]; NaN is rejected.
func isRate(p float64) bool {
	return p >= 0 && p <= 1
}
