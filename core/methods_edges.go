// File: methods_edges.go
// Role: Read-only vertex, edge and timeline queries.
// Determinism:
//   - Vertices() and Edges() are sorted; timelines are sorted by Time.
// Concurrency:
//   - Read locks only; returned edges and timelines are copies.

package core

import (
	"fmt"
	"sort"
)

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// HasEdge reports whether the edge u–v has ever been active.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeLocked(u, v) != nil
}

// Edge returns a copy of the edge u–v including its timeline.
// Returns ErrEdgeNotFound if the pair has no recorded activity.
func (g *Graph) Edge(u, v string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e := g.edgeLocked(u, v)
	if e == nil {
		return nil, fmt.Errorf("Edge(%s,%s): %w", u, v, ErrEdgeNotFound)
	}

	return e.clone(), nil
}

// Edges returns copies of all edges ordered by (From, To).
// Complexity: O(E·logE + I) where I is the total number of interactions.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e.clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// InteractionCount returns the total number of activity entries. O(E).
func (g *Graph) InteractionCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	n := 0
	for _, e := range g.edges {
		n += len(e.timeline)
	}

	return n
}

// Timeline returns the sorted activity entries of the edge u–v.
func (g *Graph) Timeline(u, v string) ([]Interaction, error) {
	e, err := g.Edge(u, v)
	if err != nil {
		return nil, err
	}

	return e.timeline, nil
}

// Spans returns the timeline of u–v compacted into [Start, Stop) runs.
func (g *Graph) Spans(u, v string) ([]Span, error) {
	e, err := g.Edge(u, v)
	if err != nil {
		return nil, err
	}

	return e.Spans(), nil
}

// LastTimestamp returns the greatest recorded timestamp of u–v.
// ok is false when the pair has no recorded activity.
func (g *Graph) LastTimestamp(u, v string) (t int64, ok bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e := g.edgeLocked(u, v)
	if e == nil || len(e.timeline) == 0 {
		return 0, false
	}

	return e.timeline[len(e.timeline)-1].Time, true
}

// Timeline returns a copy of the edge's activity entries.
func (e *Edge) Timeline() []Interaction {
	out := make([]Interaction, len(e.timeline))
	copy(out, e.timeline)

	return out
}

// Spans compacts the timeline: consecutive timestamps with the same EdgeID
// merge into one Span. AddInteraction never stores math.MaxInt64, so
// Stop cannot overflow.
// Complexity: O(T).
func (e *Edge) Spans() []Span {
	var out []Span
	for _, it := range e.timeline {
		if n := len(out); n > 0 && out[n-1].Stop == it.Time && out[n-1].EdgeID == it.EdgeID {
			out[n-1].Stop++
			continue
		}
		out = append(out, Span{Start: it.Time, Stop: it.Time + 1, EdgeID: it.EdgeID})
	}

	return out
}

// clone copies the edge; caller holds a read lock.
func (e *Edge) clone() *Edge {
	ne := *e
	ne.timeline = e.Timeline()

	return &ne
}
