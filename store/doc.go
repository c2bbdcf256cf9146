// Package store persists dynamic graph timelines in SQLite.
//
// A dataset is one saved graph: a row in "datasets" (uuid, name, orientation,
// creation time) and one row per span of activity in "spans". Saving stores
// spans, not single timesteps, so a long window costs one row:
//
//	st, err := store.Open(ctx, "graphs.db", store.WithLogger(logger))
//	ds, err := st.Save(ctx, "contacts-2024", g)
//	g2, err := st.Load(ctx, ds.ID)
//
// Vertices without any interaction are not stored.
package store
