// SPDX-License-Identifier: MIT
// Package: fakebackend/backend
//
// errors.go — sentinel errors for the backend package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Every build failure also matches ErrConfiguration, alongside the
//     specific cause (ErrEmptyName, topology.ErrSelfLoop, ...).
//   • Build never panics and never returns a partial descriptor.

package backend

import (
	"errors"
	"fmt"
)

// ErrConfiguration classifies every error returned by Build.
var ErrConfiguration = errors.New("backend: configuration error")

// ErrEmptyName indicates a blank backend name.
var ErrEmptyName = errors.New("backend: backend name is empty")

// ErrInvalidQubitCount indicates a qubit count ≤ 0.
var ErrInvalidQubitCount = errors.New("backend: qubit count must be positive")

// ErrOptionViolation indicates a WithX option received a meaningless value
// (e.g. WithQubitT1(-1), WithQubitReadoutError(2)). The violation is recorded
// when the option is applied and surfaced by Build.
var ErrOptionViolation = errors.New("backend: invalid option value")

// configErrorf wraps cause with method context and the ErrConfiguration class.
func configErrorf(method string, cause error) error {
	return fmt.Errorf("%s: %w: %w", method, ErrConfiguration, cause)
}

// violationf builds a recorded option violation.
func violationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
}
