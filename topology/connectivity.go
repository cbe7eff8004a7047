// SPDX-License-Identifier: MIT
// Package: fakebackend/topology
//
// connectivity.go — breadth-first reachability over a Graph.
//
// The walker keeps its queue, visited set and depth map local to one call,
// so concurrent walks over the same Graph never share mutable state.

package topology

import (
	"fmt"
	"sort"
)

const methodAnalyze = "Analyze"

// queueItem pairs a qubit with its BFS depth.
type queueItem struct {
	q     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *Graph
	queue   []queueItem
	visited []bool
	depth   []int
	order   []int
}

func newWalker(g *Graph) *walker {
	w := &walker{
		graph:   g,
		queue:   make([]queueItem, 0, g.n),
		visited: make([]bool, g.n),
		depth:   make([]int, g.n),
		order:   make([]int, 0, g.n),
	}
	for i := range w.depth {
		w.depth[i] = -1
	}

	return w
}

// enqueue marks q visited at depth d.
func (w *walker) enqueue(q, d int) {
	w.visited[q] = true
	w.depth[q] = d
	w.queue = append(w.queue, queueItem{q: q, depth: d})
}

// walk drains the queue starting at start.
func (w *walker) walk(start int) {
	if w.visited[start] {
		return
	}
	w.enqueue(start, 0)
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.order = append(w.order, item.q)
		for _, nb := range w.graph.adj[item.q] {
			if !w.visited[nb] {
				w.enqueue(nb, item.depth+1)
			}
		}
	}
}

// Reachable returns, for every qubit, whether it is reachable from start.
// An out-of-range start yields an all-false slice.
func (g *Graph) Reachable(start int) []bool {
	w := newWalker(g)
	if start >= 0 && start < g.n {
		w.walk(start)
	}

	return w.visited
}

// Distances returns hop counts from start; unreachable qubits get -1.
func (g *Graph) Distances(start int) []int {
	w := newWalker(g)
	if start >= 0 && start < g.n {
		w.walk(start)
	}

	return w.depth
}

// Components returns the connected components, each sorted ascending and
// listed in order of their smallest qubit.
func (g *Graph) Components() [][]int {
	w := newWalker(g)
	var comps [][]int
	for q := 0; q < g.n; q++ {
		if w.visited[q] {
			continue
		}
		mark := len(w.order)
		w.walk(q)
		comp := append([]int(nil), w.order[mark:]...)
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether every qubit is reachable from qubit 0.
func (g *Graph) Connected() bool {
	if g.n <= 1 {
		return true
	}
	for _, ok := range g.Reachable(0) {
		if !ok {
			return false
		}
	}

	return true
}

// Analyze validates cm over n qubits and reports connectivity statistics.
func Analyze(cm CouplingMap, n int) (Stats, error) {
	g, err := NewGraph(n, cm)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", methodAnalyze, err)
	}

	comps := g.Components()
	st := Stats{
		Qubits:     n,
		Edges:      len(cm),
		MaxDegree:  g.MaxDegree(),
		Components: len(comps),
		Connected:  len(comps) <= 1,
	}
	if n > 1 {
		for q := 0; q < n; q++ {
			if g.Degree(q) == 0 {
				st.Isolated = append(st.Isolated, q)
			}
		}
	}

	return st, nil
}
