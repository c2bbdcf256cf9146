// Package core provides a thread-safe in-memory dynamic Graph: a graph whose
// edges carry activity timelines.
//
// The Graph G = (V, E, T) records, for every edge, the set of integer
// timestamps at which the edge was present:
//
//   - Undirected (default) vs. directed pairs (WithDirected)
//   - Self-loops allowed by default (WithLoops(false) rejects them)
//   - Timelines are sorted, unique per timestamp, optionally tagged with an
//     edge identifier (WithEdgeID)
//   - Consecutive timestamps compact into spans [Start, Stop)
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+timelines (muEdgeAdj)
//
// Core Methods:
//
//	// Mutation
//	AddVertex(id string) error
//	AddInteraction(u, v string, t int64, opts ...InteractionOption) error
//	Clear()
//
//	// Query
//	HasVertex(id) / HasEdge(u, v)
//	Vertices() []string                    // sorted
//	Edges() []*Edge                        // copies, sorted by (From, To)
//	Timeline(u, v) ([]Interaction, error)
//	Spans(u, v) ([]Span, error)
//	LastTimestamp(u, v) (int64, bool)
//	StreamInteractions() []Event           // +/- events ordered by time
//	TemporalSnapshots() []int64            // distinct active timestamps
//	Stats() *GraphStats
//
//	// Cloning
//	CloneEmpty() / Clone()
//
// Example timeline:
//
//	AddInteraction("1", "2", 0)
//	AddInteraction("1", "2", 1)
//	AddInteraction("1", "2", 2)
//	AddInteraction("1", "2", 7)
//	Spans("1", "2") == [{0 3} {7 8}]
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – pair without recorded activity
//	ErrLoopNotAllowed – self-loop when loops disabled
//	ErrBadInterval    – WithUntil(stop) with stop <= t, or t == math.MaxInt64
package core
