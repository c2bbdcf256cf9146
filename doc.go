// Package dynlath reads, writes and stores dynamic graphs: graphs whose
// edges are active only at certain timesteps.
//
// What is in the box?
//
//	core/        — thread-safe dynamic Graph: vertices, edges and per-edge
//	               activity timelines, span compaction, event streams
//	edgelist/    — interaction lists ("u v + t" / "u v - t") and snapshot
//	               lists ("u v t [e]"): readers, writers, timestamp reindexing
//	store/       — SQLite persistence of named datasets
//	config/      — YAML + DYNLATH_* environment configuration
//	cmd/dynlath/ — command line: convert, stats, list, delete
//
// Quick example:
//
//	1 2 + 0        edge 1–2 becomes active at 0
//	1 2 - 3        …and inactive at 3: active at 0, 1, 2
//
//	g, err := edgelist.ReadInteractions(edgelist.File("contacts.txt"))
//	spans, _ := g.Spans("1", "2") // [{0 3 }]
//
//	go get github.com/katalvlaran/dynlath
package dynlath
