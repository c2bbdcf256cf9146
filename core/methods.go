// Package core: dynamic Graph mutation methods
//
// This file provides thread-safe operations for vertex registration and for
// appending activity entries to edge timelines. Vertices are guarded by
// muVert; edges, adjacency and timelines by muEdgeAdj. Lock order is always
// muVert before muEdgeAdj.

package core

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"
)

const (
	edgeIDPrefix = "e"
)

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id; caller holds muVert.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
}

// AddInteraction records that the edge u–v was active at timestamp t,
// creating both vertices and the edge on first use.
//
// Implementation:
//   - Stage 1: Validate endpoints, loop policy and the optional WithUntil interval.
//   - Stage 2: Register vertices under muVert.
//   - Stage 3: Resolve or create the edge under muEdgeAdj and merge entries
//     into its sorted timeline.
//
// Behavior highlights:
//   - Re-registering an existing timestamp is idempotent; a non-empty
//     WithEdgeID replaces the stored identifier.
//   - For undirected graphs u–v and v–u address the same edge; the first
//     registration fixes the stored From/To orientation.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed.
//   - ErrBadInterval when stop <= t, or when t is math.MaxInt64 (the
//     half-open [t, t+1) would overflow).
//
// Complexity:
//   - O(log T + k) per call for a timeline of length T and k registered steps
//     (insertions in the middle of a timeline shift the tail).
func (g *Graph) AddInteraction(u, v string, t int64, opts ...InteractionOption) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	var cfg interactionConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if t == math.MaxInt64 {
		return fmt.Errorf("AddInteraction(%s,%s,%d): no representable stop: %w", u, v, t, ErrBadInterval)
	}
	stop := t + 1
	if cfg.hasStop {
		if cfg.stop <= t {
			return fmt.Errorf("AddInteraction(%s,%s,[%d,%d)): %w", u, v, t, cfg.stop, ErrBadInterval)
		}
		stop = cfg.stop
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(u)
	g.addVertexLocked(v)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e := g.edgeLocked(u, v)
	if e == nil {
		e = g.newEdgeLocked(u, v)
	}
	for ts := t; ts < stop; ts++ {
		e.insert(Interaction{Time: ts, EdgeID: cfg.edgeID})
	}

	return nil
}

// newEdgeLocked creates the edge u→v (mirrored when undirected); caller holds muEdgeAdj.
func (g *Graph) newEdgeLocked(u, v string) *Edge {
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))
	e := &Edge{ID: eid, From: u, To: v, Directed: g.directed}
	g.edges[eid] = e
	g.ensureAdj(u)[v] = eid
	if !g.directed && u != v {
		g.ensureAdj(v)[u] = eid
	}

	return e
}

// ensureAdj makes adjacencyList[id] non-nil and returns it.
func (g *Graph) ensureAdj(id string) map[string]string {
	inner, ok := g.adjacencyList[id]
	if !ok {
		inner = make(map[string]string)
		g.adjacencyList[id] = inner
	}

	return inner
}

// edgeLocked returns the edge u→v or nil; caller holds muEdgeAdj.
func (g *Graph) edgeLocked(u, v string) *Edge {
	eid, ok := g.adjacencyList[u][v]
	if !ok {
		return nil
	}

	return g.edges[eid]
}

// insert merges it into the sorted timeline.
func (e *Edge) insert(it Interaction) {
	n := len(e.timeline)
	// Fast path: streams are usually fed in time order.
	if n == 0 || e.timeline[n-1].Time < it.Time {
		e.timeline = append(e.timeline, it)
		return
	}
	i := sort.Search(n, func(i int) bool { return e.timeline[i].Time >= it.Time })
	if i < n && e.timeline[i].Time == it.Time {
		if it.EdgeID != "" {
			e.timeline[i].EdgeID = it.EdgeID
		}
		return
	}
	e.timeline = append(e.timeline, Interaction{})
	copy(e.timeline[i+1:], e.timeline[i:])
	e.timeline[i] = it
}

// Clear resets the graph to empty state (vertices, edges, timelines) but preserves flags.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	// reset maps
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]string)
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
