// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters and summaries.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only summary of a Graph's configuration and catalog sizes.
type GraphStats struct {
	Directed     bool
	AllowsLoops  bool
	VertexCount  int
	EdgeCount    int
	Interactions int   // total activity entries across all timelines
	Spans        int   // total compacted [start, stop) runs
	FirstTime    int64 // smallest recorded timestamp (valid when Interactions > 0)
	LastTime     int64 // greatest recorded timestamp (valid when Interactions > 0)
}

// Directed reports whether edges are ordered pairs.
//
// Returns:
//   - bool: true if u→v and v→u are distinct edges.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (u==v) are permitted by policy.
// If false, AddInteraction(v,v,...) returns ErrLoopNotAllowed.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Stats produces a deterministic, read-only snapshot of configuration flags,
// catalog sizes and the overall time range.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, scan edges and timelines, then release.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously.
//
// Complexity:
//   - Time O(V+I), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		n := len(e.timeline)
		if n == 0 {
			continue
		}
		first, last := e.timeline[0].Time, e.timeline[n-1].Time
		if stats.Interactions == 0 || first < stats.FirstTime {
			stats.FirstTime = first
		}
		if stats.Interactions == 0 || last > stats.LastTime {
			stats.LastTime = last
		}
		stats.Interactions += n
		stats.Spans += len(e.Spans())
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
