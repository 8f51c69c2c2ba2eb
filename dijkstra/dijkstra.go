package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/katas/kata"
)

// Dijkstra computes the shortest distance from start to every node of g.
//
// Returns:
//
//   - dist: node → minimal distance; Infinity if unreachable (or beyond MaxDistance).
//   - prev: node → predecessor on one shortest path, NoPredecessor for start and
//     unreachable nodes. Nil unless WithReturnPath is given.
//   - err:  one of the sentinel errors, or kata.ErrNotImplemented for MemoryModeCompact.
//
// Validation order: options, nil graph, start presence, negative weights.
func Dijkstra(g Graph, start int, opts ...Option) (map[int]int64, map[int]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxDistance < 0 {
		return nil, nil, fmt.Errorf("%w: MaxDistance=%d must be non-negative", ErrOptionViolation, cfg.MaxDistance)
	}
	if cfg.InfEdgeThreshold <= 0 {
		return nil, nil, fmt.Errorf("%w: InfEdgeThreshold=%d must be positive", ErrOptionViolation, cfg.InfEdgeThreshold)
	}
	if cfg.MemoryMode == MemoryModeCompact {
		return nil, nil, kata.NotImplemented("dijkstra: compact memory mode")
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, start)
	}

	// Fail fast: correctness depends on every weight being non-negative.
	for u, edges := range g {
		for _, e := range edges {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	nodes := g.Nodes()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]int64, len(nodes)),
		prev:    make(map[int]int, len(nodes)),
		visited: make(map[int]bool, len(nodes)),
		pq:      make(nodePQ, 0, len(nodes)),
	}
	r.init(nodes, start)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// Distances runs Dijkstra and returns the distances as a slice indexed by node.
// The node set of g must be exactly 0..n-1; otherwise ErrSparseNodes.
func Distances(g Graph, start int, opts ...Option) ([]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	nodes := g.Nodes()
	slices.Sort(nodes)
	for i, v := range nodes {
		if v != i {
			return nil, fmt.Errorf("%w: expected node %d, found %d", ErrSparseNodes, i, v)
		}
	}

	dist, _, err := Dijkstra(g, start, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(nodes))
	for v, d := range dist {
		out[v] = d
	}

	return out, nil
}

// Path rebuilds the node sequence from source to target using the
// predecessor map returned with WithReturnPath. It returns nil when target is
// unknown or unreachable. The path from source to itself is [source].
func Path(prev map[int]int, source, target int) []int {
	if _, ok := prev[target]; !ok {
		return nil
	}
	route := []int{target}
	for v := target; v != source; {
		p := prev[v]
		// NoPredecessor before reaching source means unreachable; the length
		// check guards against a malformed, cyclic map.
		if p == NoPredecessor || len(route) > len(prev) {
			return nil
		}
		route = append(route, p)
		v = p
	}
	slices.Reverse(route)

	return route
}

// runner holds the mutable state of one Dijkstra execution.
type runner struct {
	g       Graph
	options Options
	dist    map[int]int64
	prev    map[int]int
	visited map[int]bool
	pq      nodePQ
}

// init sets every node to Infinity and seeds the frontier with start at 0.
func (r *runner) init(nodes []int, start int) {
	for _, v := range nodes {
		r.dist[v] = Infinity
		r.prev[v] = NoPredecessor
	}
	r.dist[start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})
}

// process drains the frontier. It stops early once the closest candidate
// lies beyond MaxDistance, since every later candidate is at least as far.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax tries to improve the distance of every neighbor of the finalized node u.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, e := range r.g[u] {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		// du + Weight would overflow past Infinity.
		if e.Weight > Infinity-du {
			continue
		}
		nd := du + e.Weight
		if nd > r.options.MaxDistance || nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd})
	}
}

// nodeItem is a frontier candidate.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem by dist. Ties break on the smaller node
// ID so that runs are reproducible despite map iteration order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
