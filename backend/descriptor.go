// SPDX-License-Identifier: MIT
// Package: fakebackend/backend
//
// descriptor.go — the immutable backend descriptor.

package backend

import (
	"github.com/katalvlaran/fakebackend/calibration"
	"github.com/katalvlaran/fakebackend/catalog"
)

// Backend is the capability surface a compilation pipeline consumes.
type Backend interface {
	Name() string
	Configuration() Configuration
	Properties() calibration.Properties
	Defaults() catalog.Defaults
}

// Descriptor owns one Configuration, one Properties and one Defaults record,
// all produced by a single Build. It is never mutated after construction and
// is safe for concurrent use. Accessors return deep copies.
type Descriptor struct {
	name     string
	config   Configuration
	props    calibration.Properties
	defaults catalog.Defaults
}

var _ Backend = (*Descriptor)(nil)

// Name returns the backend name.
func (d *Descriptor) Name() string { return d.name }

// NQubits returns the qubit count.
func (d *Descriptor) NQubits() int { return d.config.NQubits }

// Configuration returns a copy of the static metadata record.
func (d *Descriptor) Configuration() Configuration { return d.config.Clone() }

// Properties returns a copy of the calibration record.
func (d *Descriptor) Properties() calibration.Properties { return d.props.Clone() }

// Defaults returns a copy of the instruction-catalog record.
func (d *Descriptor) Defaults() catalog.Defaults { return d.defaults.Clone() }
