// SPDX-License-Identifier: MIT
// Package: fakebackend/topology
//
// generate.go — deterministic default coupling-map layout.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewQubits).
//   • Same n ⇒ identical map, edge for edge, in identical order.
//   • Result is connected, max degree ≤ 3, every edge stored as (low, high).
//
// Emission order:
//   • Complete layout (n ≤ CompleteLayoutMaxQubits): (i,j) lexicographic.
//   • Lattice layout: row by row; within a row horizontals left→right, then
//     verticals left→right; stitch edges last, in qubit order.

package topology

import (
	"fmt"
	"math"
)

const methodGenerate = "Generate"

// CompleteLayoutMaxQubits is the largest qubit count laid out as a complete
// graph. K4 still has degree 3; from 5 qubits on the staggered lattice takes over.
const CompleteLayoutMaxQubits = 4

// Generate returns the default coupling map for n qubits.
func Generate(n int) (CouplingMap, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodGenerate, n, ErrTooFewQubits)
	}
	if n <= CompleteLayoutMaxQubits {
		return completeLayout(n), nil
	}

	return latticeLayout(n), nil
}

// MustGenerate is Generate for n known to be valid; it panics otherwise.
// Intended for package-level fixtures and examples.
func MustGenerate(n int) CouplingMap {
	cm, err := Generate(n)
	if err != nil {
		panic(err)
	}

	return cm
}

// LatticeWidth returns the row width used by the lattice layout for n qubits.
func LatticeWidth(n int) int {
	if n < 1 {
		return 0
	}

	return int(math.Ceil(math.Sqrt(float64(n))))
}

// completeLayout links every unordered pair once, low index first.
func completeLayout(n int) CouplingMap {
	cm := make(CouplingMap, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			cm = append(cm, Edge{i, j})
		}
	}

	return cm
}

// latticeLayout emits the staggered lattice and stitches stragglers.
func latticeLayout(n int) CouplingMap {
	w := LatticeWidth(n)
	rows := (n + w - 1) / w
	cm := make(CouplingMap, 0, n+1)

	for r := 0; r < rows; r++ {
		base := r * w
		// horizontals
		for c := 0; c+1 < w; c++ {
			q := base + c
			if q+1 >= n {
				break
			}
			cm = append(cm, Edge{q, q + 1})
		}
		// staggered verticals
		for c := 0; c < w; c++ {
			q := base + c
			if (r+c)%2 != 0 {
				continue
			}
			if q+w >= n {
				continue
			}
			cm = append(cm, Edge{q, q + w})
		}
	}

	return stitch(cm, n, w)
}

// stitch links every qubit unreachable from qubit 0 to the qubit one row
// above it. Only a one-qubit trailing row whose column 0 carries no vertical
// can be cut off, so at most one stitch is expected.
func stitch(cm CouplingMap, n, w int) CouplingMap {
	for {
		g, err := NewGraph(n, cm)
		if err != nil {
			// Layout edges are in range by construction.
			return cm
		}
		reach := g.Reachable(0)
		straggler := -1
		for q, ok := range reach {
			if !ok {
				straggler = q
				break
			}
		}
		if straggler < 0 || straggler-w < 0 {
			return cm
		}
		cm = append(cm, Edge{straggler - w, straggler})
	}
}
