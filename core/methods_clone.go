// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so edge IDs stay monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices,
// but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	clone := NewGraph(WithDirected(g.directed), WithLoops(g.allowLoops))
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and timelines.
// Complexity: O(V + E + I).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for eid, e := range g.edges {
		ne := e.clone()
		clone.edges[eid] = ne
		clone.ensureAdj(ne.From)[ne.To] = eid
		if !ne.Directed && ne.From != ne.To {
			clone.ensureAdj(ne.To)[ne.From] = eid
		}
	}

	return clone
}
