// Package edgelist reads and writes dynamic graphs as flat text edge lists.
//
// Two formats are supported.
//
// Interaction list, one event per line:
//
//	1 2 + 0
//	1 2 - 3
//
// "+" opens an activity of the pair at t, "-" closes it; the pair above is
// active at 0, 1 and 2.
//
// Snapshot list, one active pair per line, with an optional edge identifier:
//
//	1 2 5
//	1 3 5 e17
//
// Reading:
//
//	g, err := edgelist.ReadInteractions(edgelist.File("net.txt"),
//		edgelist.WithNodeType(edgelist.IntNodes),
//		edgelist.WithReindex(),
//	)
//
// Text after the comment marker ("#") is ignored, blank lines are skipped and
// lines with the wrong number of fields are skipped silently; WithWarnings
// reports each of them. A token that fails conversion aborts the read with a
// *TypeConversionError. WithReindex runs a pre-pass over the source and stores
// dense ordinals (0, 1, 2, ...) of the distinct timestamps instead of the raw
// values, so the source must be re-readable (see Source).
//
// Writing:
//
//	err := edgelist.WriteSnapshotsFile(g, "net.snap", edgelist.WithDelimiter("\t"))
//
// Interaction output emits one "+" and one "-" line per span of activity and
// reads back into an equal timeline. Snapshot output emits one line per
// active timestep.
package edgelist
