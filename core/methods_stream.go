// File: methods_stream.go
// Role: Time-ordered views over all timelines.
// Determinism:
//   - Events are ordered by (Time, From, To), with OpRemove before OpAdd at equal keys.
// Concurrency:
//   - Read locks only.

package core

import "sort"

// StreamInteractions returns the graph's history as a flat event stream:
// every span [start, stop) of every edge contributes an OpAdd at start and an
// OpRemove at stop.
//
// Implementation:
//   - Stage 1: Snapshot edges (sorted copies).
//   - Stage 2: Emit two events per span.
//   - Stage 3: Stable sort by (Time, From, To, Op).
//
// Notes:
//   - Ordering OpRemove first at equal keys keeps an edge that closes and
//     reopens at the same instant well formed for readers.
//
// Complexity:
//   - O(S·log S) for S spans.
func (g *Graph) StreamInteractions() []Event {
	edges := g.Edges()
	var out []Event
	for _, e := range edges {
		for _, s := range e.Spans() {
			out = append(out,
				Event{From: e.From, To: e.To, Op: OpAdd, Time: s.Start},
				Event{From: e.From, To: e.To, Op: OpRemove, Time: s.Stop},
			)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		if a.From != b.From {
			return a.From < b.From
		}
		if a.To != b.To {
			return a.To < b.To
		}
		return a.Op == OpRemove && b.Op == OpAdd
	})

	return out
}

// TemporalSnapshots returns the sorted distinct timestamps at which at least
// one edge was active.
// Complexity: O(I·log I).
func (g *Graph) TemporalSnapshots() []int64 {
	g.muEdgeAdj.RLock()
	seen := make(map[int64]struct{})
	for _, e := range g.edges {
		for _, it := range e.timeline {
			seen[it.Time] = struct{}{}
		}
	}
	g.muEdgeAdj.RUnlock()

	out := make([]int64, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
