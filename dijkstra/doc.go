// Package dijkstra computes single-source shortest distances on a directed graph
// with non-negative integer edge weights.
//
// Overview:
//
//   - A Graph maps a node ID to its outgoing edges: Graph{0: {{To: 1, Weight: 4}}}.
//     The node set is every key plus every Edge.To, so a sink needs no entry.
//   - The frontier is a min-heap of (distance, node) candidates. The loop pops the
//     closest candidate, skips it if that node is already finalized, finalizes it,
//     and relaxes each outgoing edge. It stops when the frontier is empty.
//   - Unreachable nodes keep the distance Infinity (math.MaxInt64). They are
//     always present in the result, never silently omitted.
//
// Two output shapes:
//
//   - Dijkstra returns map[node]distance and works for any node IDs, sparse or negative.
//   - Distances returns []int64 where index k is node k. It requires the node set
//     to be exactly 0..n-1 and fails with ErrSparseNodes otherwise.
//
// Options:
//
//   - WithReturnPath():          also return the predecessor map; rebuild routes with Path.
//   - WithMaxDistance(d):        do not settle nodes farther than d (d ≥ 0).
//   - WithInfEdgeThreshold(t):   treat edges with weight ≥ t as impassable (t > 0).
//   - WithMemoryMode(m):         MemoryModeFull only. MemoryModeCompact is left open and
//     reports kata.ErrNotImplemented.
//
// Errors:
//
//   - ErrNilGraph        graph is nil.
//   - ErrVertexNotFound  start is not a node of the graph.
//   - ErrNegativeWeight  some edge has a negative weight (O(E) pre-scan, before any work).
//   - ErrOptionViolation an option value is out of range.
//   - ErrSparseNodes     Distances was asked for a dense result on non-dense IDs.
//
// All of them wrap kata.ErrInvalidInput.
//
// Complexity:
//
//   - Time:  O((V + E) log V), lazy decrease-key (stale heap entries are skipped on pop).
//   - Space: O(V + E).
package dijkstra
