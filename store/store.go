// SPDX-License-Identifier: MIT
// Package: dynlath/store
//
// store.go — SQLite-backed dataset repository.
//
// Contract:
//   • Every operation takes a context and runs in at most one transaction.
//   • Save never mutates the graph; Load/LoadInto rebuild it span by span.
//   • The pool is limited to one connection (SQLite has a single writer and
//     ":memory:" databases are per connection).

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/dynlath/core"
	"github.com/katalvlaran/dynlath/edgelist"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

// driverName is the database/sql name registered by modernc.org/sqlite.
const driverName = "sqlite"

// createdLayout is fixed-width so created_at sorts as text.
const createdLayout = "2006-01-02T15:04:05.000000000Z07:00"

const schema = `
CREATE TABLE IF NOT EXISTS datasets (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	directed INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS spans (
	dataset_id TEXT NOT NULL,
	u TEXT NOT NULL,
	v TEXT NOT NULL,
	start INTEGER NOT NULL,
	stop INTEGER NOT NULL,
	edge_id TEXT NOT NULL DEFAULT '',
	FOREIGN KEY (dataset_id) REFERENCES datasets(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_spans_dataset ON spans(dataset_id);
CREATE INDEX IF NOT EXISTS idx_datasets_name ON datasets(name);
`

// Graph is what Save needs from a dynamic graph. *core.Graph implements it.
type Graph interface {
	Directed() bool
	Edges() []*core.Edge
}

// Dataset describes one saved graph.
type Dataset struct {
	ID        string
	Name      string
	Directed  bool
	CreatedAt time.Time
	Edges     int
	Spans     int
}

// Store is a dataset repository over one SQLite database.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for store operations. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("store: WithLogger(nil)")
	}
	return func(s *Store) { s.logger = l }
}

// WithClock overrides the creation-time source.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("store: WithClock(nil)")
	}
	return func(s *Store) { s.now = now }
}

// Open opens (creating if needed) the database at path and migrates it.
// path may be ":memory:".
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	s.logger.Debug("store: opened", zap.String("path", path))

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores every span of g under a new dataset id.
func (s *Store) Save(ctx context.Context, name string, g Graph) (Dataset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Dataset{}, ErrEmptyName
	}
	if g == nil {
		return Dataset{}, ErrNilGraph
	}

	ds := Dataset{
		ID:        uuid.NewString(),
		Name:      name,
		Directed:  g.Directed(),
		CreatedAt: s.now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO datasets (id, name, directed, created_at) VALUES (?, ?, ?, ?)
	`, ds.ID, ds.Name, ds.Directed, ds.CreatedAt.Format(createdLayout)); err != nil {
		return Dataset{}, fmt.Errorf("failed to insert dataset: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO spans (dataset_id, u, v, start, stop, edge_id) VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, e := range g.Edges() {
		ds.Edges++
		for _, sp := range e.Spans() {
			if _, err := stmt.ExecContext(ctx, ds.ID, e.From, e.To, sp.Start, sp.Stop, sp.EdgeID); err != nil {
				return Dataset{}, fmt.Errorf("failed to insert span %s-%s: %w", e.From, e.To, err)
			}
			ds.Spans++
		}
	}

	if err := tx.Commit(); err != nil {
		return Dataset{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.logger.Info("store: dataset saved",
		zap.String("id", ds.ID),
		zap.String("name", ds.Name),
		zap.Int("edges", ds.Edges),
		zap.Int("spans", ds.Spans),
	)

	return ds, nil
}

// Get returns the dataset with the given id.
func (s *Store) Get(ctx context.Context, id string) (Dataset, error) {
	return s.one(ctx, `WHERE d.id = ?`, id)
}

// Resolve finds a dataset by id, or else by name (latest saved wins).
func (s *Store) Resolve(ctx context.Context, ref string) (Dataset, error) {
	if _, err := uuid.Parse(ref); err == nil {
		ds, err := s.Get(ctx, ref)
		if !errors.Is(err, ErrNotFound) {
			return ds, err
		}
	}

	return s.one(ctx, `WHERE d.name = ? ORDER BY d.created_at DESC, d.rowid DESC LIMIT 1`, ref)
}

func (s *Store) one(ctx context.Context, where string, arg any) (Dataset, error) {
	list, err := s.query(ctx, where, arg)
	if err != nil {
		return Dataset{}, err
	}
	if len(list) == 0 {
		return Dataset{}, fmt.Errorf("%w: %v", ErrNotFound, arg)
	}

	return list[0], nil
}

// List returns every dataset in creation order.
func (s *Store) List(ctx context.Context) ([]Dataset, error) {
	return s.query(ctx, `ORDER BY d.created_at, d.rowid`)
}

func (s *Store) query(ctx context.Context, tail string, args ...any) ([]Dataset, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.id, d.name, d.directed, d.created_at,
			(SELECT COUNT(*) FROM (SELECT DISTINCT u, v FROM spans WHERE dataset_id = d.id)),
			(SELECT COUNT(*) FROM spans WHERE dataset_id = d.id)
		FROM datasets d
	`+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query datasets: %w", err)
	}
	defer rows.Close()

	var out []Dataset
	for rows.Next() {
		var (
			ds      Dataset
			created string
		)
		if err := rows.Scan(&ds.ID, &ds.Name, &ds.Directed, &created, &ds.Edges, &ds.Spans); err != nil {
			return nil, fmt.Errorf("failed to scan dataset: %w", err)
		}
		if ds.CreatedAt, err = time.Parse(createdLayout, created); err != nil {
			return nil, fmt.Errorf("failed to parse created_at of %s: %w", ds.ID, err)
		}
		out = append(out, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating datasets: %w", err)
	}

	return out, nil
}

// Load rebuilds a saved dataset as a new graph with the saved orientation.
func (s *Store) Load(ctx context.Context, id string) (*core.Graph, error) {
	ds, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	g := core.NewGraph(core.WithDirected(ds.Directed))
	if err := s.fill(ctx, ds, g); err != nil {
		return nil, err
	}

	return g, nil
}

// LoadInto clears g and replays the saved spans into it.
func (s *Store) LoadInto(ctx context.Context, id string, g edgelist.Target) error {
	if g == nil {
		return ErrNilGraph
	}
	ds, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	g.Clear()

	return s.fill(ctx, ds, g)
}

func (s *Store) fill(ctx context.Context, ds Dataset, g edgelist.Target) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u, v, start, stop, edge_id FROM spans WHERE dataset_id = ? ORDER BY rowid
	`, ds.ID)
	if err != nil {
		return fmt.Errorf("failed to query spans: %w", err)
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		var (
			u, v, edgeID string
			start, stop  int64
		)
		if err := rows.Scan(&u, &v, &start, &stop, &edgeID); err != nil {
			return fmt.Errorf("failed to scan span: %w", err)
		}
		opts := []core.InteractionOption{core.WithUntil(stop)}
		if edgeID != "" {
			opts = append(opts, core.WithEdgeID(edgeID))
		}
		if err := g.AddInteraction(u, v, start, opts...); err != nil {
			return fmt.Errorf("failed to replay span %s-%s [%d,%d): %w", u, v, start, stop, err)
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating spans: %w", err)
	}
	s.logger.Debug("store: dataset loaded", zap.String("id", ds.ID), zap.Int("spans", n))

	return nil
}

// Delete removes a dataset and its spans.
func (s *Store) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM spans WHERE dataset_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete spans: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM datasets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.logger.Info("store: dataset deleted", zap.String("id", id))

	return nil
}
