// Package topology builds and inspects the qubit coupling map of a synthetic
// backend.
//
// A coupling map is an ordered list of directed qubit pairs. Each pair names a
// physical link usable by a two-qubit instruction, with the first element as
// the control. The order of the list is load-bearing: downstream consumers
// enumerate two-qubit instructions in stored edge order and resolve commands
// by exact (not reversed) target pair.
//
// What & Why
//
//   - Generate(n) fabricates a deterministic default layout when the caller
//     does not supply one. The same n always yields the same map, so every
//     topology-dependent record derived from it is reproducible.
//   - Validate(cm, n) checks a caller-supplied map against the qubit range.
//     A valid map is used verbatim; the generator is bypassed entirely.
//   - Analyze(cm, n) walks the undirected view of a map breadth-first and
//     reports connectivity and degree statistics.
//
// Layout algorithm
//
//	n == 1      no edges
//	2 ≤ n ≤ 4   complete graph, pairs (i,j) with i<j in lexicographic order
//	n ≥ 5       staggered lattice, width w = ceil(sqrt(n)), row-major ids:
//
//	              0───1───2───3
//	              │       │
//	              4───5───6───7
//	                  │
//	              8───9
//
//	            per row: horizontal links left to right, then vertical links
//	            (q, q+w) on columns where row+col is even. A qubit left
//	            unreachable from qubit 0 is stitched to the qubit above it.
//
// Guarantees (all n ≥ 1):
//   - Connected; no isolated qubits.
//   - Max degree ≤ 3.
//   - n-1 ≤ |edges| ≤ 3n/2.
//
// Complexity:
//   - Generate: O(n) time and space (plus one O(n) BFS for stitching).
//   - Validate: O(|cm|).
//   - Analyze:  O(n + |cm|).
package topology
