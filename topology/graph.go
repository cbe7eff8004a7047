// SPDX-License-Identifier: MIT
// Package: fakebackend/topology
//
// graph.go — undirected adjacency view over a coupling map.
//
// Design:
//   • Vertices are the dense qubit indices 0..n-1; no string IDs.
//   • A directed pair (a,b) and its reverse collapse into one undirected link.
//   • Neighbor lists are sorted ascending so every walk is deterministic.
//   • The view is immutable after construction and safe for concurrent reads.

package topology

import (
	"fmt"
	"sort"
)

const methodNewGraph = "NewGraph"

// Graph is the undirected, simple view of a coupling map.
type Graph struct {
	n   int
	adj [][]int // adj[q] = sorted distinct neighbors of q
}

// NewGraph builds the undirected view of cm over n qubits.
// Returns ErrTooFewQubits, ErrQubitOutOfRange or ErrSelfLoop on invalid input.
// Complexity: O(n + |cm| log d) time, O(n + |cm|) space.
func NewGraph(n int, cm CouplingMap) (*Graph, error) {
	if err := Validate(cm, n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewGraph, err)
	}

	seen := make([]map[int]struct{}, n)
	g := &Graph{n: n, adj: make([][]int, n)}
	link := func(u, v int) {
		if seen[u] == nil {
			seen[u] = make(map[int]struct{}, 3)
		}
		if _, dup := seen[u][v]; dup {
			return
		}
		seen[u][v] = struct{}{}
		g.adj[u] = append(g.adj[u], v)
	}
	for _, e := range cm {
		link(e[0], e[1])
		link(e[1], e[0])
	}
	for q := range g.adj {
		sort.Ints(g.adj[q])
	}

	return g, nil
}

// Qubits returns the number of vertices.
func (g *Graph) Qubits() int { return g.n }

// Neighbors returns a copy of the sorted neighbor list of q, or nil when q
// is out of range.
func (g *Graph) Neighbors(q int) []int {
	if q < 0 || q >= g.n {
		return nil
	}
	out := make([]int, len(g.adj[q]))
	copy(out, g.adj[q])

	return out
}

// Degree returns the undirected degree of q (0 when out of range).
func (g *Graph) Degree(q int) int {
	if q < 0 || q >= g.n {
		return 0
	}

	return len(g.adj[q])
}

// HasLink reports whether u and v are linked in either orientation.
func (g *Graph) HasLink(u, v int) bool {
	if u < 0 || u >= g.n {
		return false
	}
	i := sort.SearchInts(g.adj[u], v)

	return i < len(g.adj[u]) && g.adj[u][i] == v
}

// MaxDegree returns the largest vertex degree.
func (g *Graph) MaxDegree() int {
	best := 0
	for _, nb := range g.adj {
		if len(nb) > best {
			best = len(nb)
		}
	}

	return best
}
