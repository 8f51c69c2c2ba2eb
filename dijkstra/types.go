package dijkstra

import (
	"math"

	"github.com/katalvlaran/katas/kata"
)

// Infinity is the distance reported for nodes the source cannot reach.
const Infinity int64 = math.MaxInt64

// NoPredecessor marks the source and unreachable nodes in the predecessor map.
const NoPredecessor = -1

// Sentinel errors returned by Dijkstra and Distances.
var (
	// ErrNilGraph indicates that a nil Graph was passed.
	ErrNilGraph = kata.Invalid("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the start node is not part of the graph.
	ErrVertexNotFound = kata.Invalid("dijkstra: start node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = kata.Invalid("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates an out-of-range option value.
	ErrOptionViolation = kata.Invalid("dijkstra: option violation")

	// ErrSparseNodes indicates that node IDs are not exactly 0..n-1,
	// so a dense distance slice cannot represent them.
	ErrSparseNodes = kata.Invalid("dijkstra: node IDs are not dense from 0")
)

// Edge is a directed, weighted arc to node To.
type Edge struct {
	To     int
	Weight int64
}

// Graph maps a node ID to its outgoing edges.
type Graph map[int][]Edge

// Nodes returns every node of g: each key and each edge target.
func (g Graph) Nodes() []int {
	seen := make(map[int]struct{}, len(g))
	for u, edges := range g {
		seen[u] = struct{}{}
		for _, e := range edges {
			seen[e.To] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}

	return out
}

// HasNode reports whether v is a key of g or the target of some edge.
func (g Graph) HasNode(v int) bool {
	if _, ok := g[v]; ok {
		return true
	}
	for _, edges := range g {
		for _, e := range edges {
			if e.To == v {
				return true
			}
		}
	}

	return false
}

// MemoryMode controls how predecessor information is kept.
type MemoryMode int

const (
	// MemoryModeFull keeps a predecessor per node.
	MemoryModeFull MemoryMode = iota

	// MemoryModeCompact would drop predecessor storage. Not implemented.
	MemoryModeCompact
)

// Options configures Dijkstra.
//
// MaxDistance      – nodes farther than this are left at Infinity. Default Infinity.
// InfEdgeThreshold – edges with weight ≥ this are skipped. Default Infinity.
type Options struct {
	MemoryMode       MemoryMode
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// WithReturnPath makes Dijkstra return the predecessor map.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration at max. Negative values fail with ErrOptionViolation.
func WithMaxDistance(max int64) Option {
	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold makes edges with weight ≥ threshold impassable.
// Zero or negative values fail with ErrOptionViolation.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// WithMemoryMode selects the predecessor storage mode.
func WithMemoryMode(mode MemoryMode) Option {
	return func(o *Options) { o.MemoryMode = mode }
}

// DefaultOptions returns the defaults: full memory mode, no path, no caps.
func DefaultOptions() Options {
	return Options{
		MemoryMode:       MemoryModeFull,
		ReturnPath:       false,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}
