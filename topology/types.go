// SPDX-License-Identifier: MIT
// Package: fakebackend/topology
//
// types.go — coupling-map value types and sentinel errors.

package topology

import (
	"errors"
	"strconv"
)

// Sentinel errors for topology generation and validation.
var (
	// ErrTooFewQubits indicates a qubit count below 1.
	ErrTooFewQubits = errors.New("topology: qubit count must be ≥ 1")

	// ErrQubitOutOfRange indicates an edge endpoint outside [0, n).
	ErrQubitOutOfRange = errors.New("topology: qubit index out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("topology: self-loop edge")
)

// Edge is a directed qubit pair (control, target).
type Edge [2]int

// Control returns the first endpoint.
func (e Edge) Control() int { return e[0] }

// Target returns the second endpoint.
func (e Edge) Target() int { return e[1] }

// Reverse returns the pair with its endpoints swapped.
func (e Edge) Reverse() Edge { return Edge{e[1], e[0]} }

// Qubits returns the endpoints as a fresh slice, control first.
func (e Edge) Qubits() []int { return []int{e[0], e[1]} }

// String renders the edge as "a-b".
func (e Edge) String() string {
	return strconv.Itoa(e[0]) + "-" + strconv.Itoa(e[1])
}

// CouplingMap is an ordered list of directed edges.
type CouplingMap []Edge

// FromPairs converts [][]int pairs into a CouplingMap. Rows whose length is
// not exactly 2 are reported through ok=false at their index.
func FromPairs(pairs [][]int) (cm CouplingMap, badIndex int, ok bool) {
	cm = make(CouplingMap, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, i, false
		}
		cm = append(cm, Edge{p[0], p[1]})
	}

	return cm, -1, true
}

// Pairs converts the map into freshly allocated [][]int rows.
func (cm CouplingMap) Pairs() [][]int {
	out := make([][]int, len(cm))
	for i, e := range cm {
		out[i] = e.Qubits()
	}

	return out
}

// Clone returns a copy that shares no storage with cm. A nil map clones to nil.
func (cm CouplingMap) Clone() CouplingMap {
	if cm == nil {
		return nil
	}
	out := make(CouplingMap, len(cm))
	copy(out, cm)

	return out
}

// Contains reports whether e is stored exactly (same orientation).
func (cm CouplingMap) Contains(e Edge) bool {
	for _, x := range cm {
		if x == e {
			return true
		}
	}

	return false
}

// Index returns the position of e in stored order, or -1.
func (cm CouplingMap) Index(e Edge) int {
	for i, x := range cm {
		if x == e {
			return i
		}
	}

	return -1
}

// Stats summarizes a coupling map over n qubits.
type Stats struct {
	Qubits     int   // number of qubits analyzed
	Edges      int   // number of stored (directed) edges
	MaxDegree  int   // largest undirected degree
	Components int   // connected components of the undirected view
	Connected  bool  // Components ≤ 1
	Isolated   []int // qubits with degree 0, ascending (only when n > 1)
}
