// SPDX-License-Identifier: MIT
// Package: fakebackend/topology
//
// validate.go — admission checks for caller-supplied coupling maps.

package topology

import "fmt"

const methodValidate = "Validate"

// Validate checks every edge of cm against the qubit range [0, n).
// Duplicate and reversed pairs are allowed; the map is otherwise taken as is.
// Errors carry the offending edge index and wrap ErrTooFewQubits,
// ErrQubitOutOfRange or ErrSelfLoop.
// Complexity: O(|cm|).
func Validate(cm CouplingMap, n int) error {
	if n < 1 {
		return fmt.Errorf("%s: n=%d: %w", methodValidate, n, ErrTooFewQubits)
	}
	for i, e := range cm {
		for _, q := range e {
			if q < 0 || q >= n {
				return fmt.Errorf("%s: edge #%d %s with n=%d: %w", methodValidate, i, e, n, ErrQubitOutOfRange)
			}
		}
		if e[0] == e[1] {
			return fmt.Errorf("%s: edge #%d %s: %w", methodValidate, i, e, ErrSelfLoop)
		}
	}

	return nil
}
