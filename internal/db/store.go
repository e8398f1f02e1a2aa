package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mohinik7/Metro-Route-Optimization/internal/model"
	"github.com/mohinik7/Metro-Route-Optimization/internal/network"
)

// Store reads and writes the network tables. The network is loaded once at
// startup; nothing else is persisted.
type Store struct {
	DB     *sql.DB
	Driver string
}

func (s Store) q(query string) string { return rebind(s.Driver, query) }

// EnsureSchema creates the tables if they don't exist.
func (s Store) EnsureSchema(ctx context.Context) error {
	stmts, err := statements(s.Driver)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// Seed replaces the stored network with t in a single transaction.
func (s Store) Seed(ctx context.Context, t network.Table) error {
	if _, err := t.Build(); err != nil {
		return fmt.Errorf("refusing to seed invalid network: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM edges`); err != nil {
		return fmt.Errorf("failed to clear edges: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM stations`); err != nil {
		return fmt.Errorf("failed to clear stations: %w", err)
	}

	for id, name := range t.Stations {
		if _, err := tx.ExecContext(ctx, s.q(`INSERT INTO stations (id, name) VALUES (?, ?)`), id, name); err != nil {
			return fmt.Errorf("failed to insert station %q: %w", name, err)
		}
	}
	for _, e := range t.Edges {
		if _, err := tx.ExecContext(ctx,
			s.q(`INSERT INTO edges (src_node, dst_node, weight) VALUES (?, ?, ?)`),
			e.Src, e.Dst, e.Weight); err != nil {
			return fmt.Errorf("failed to insert edge %d-%d: %w", e.Src, e.Dst, err)
		}
	}

	return tx.Commit()
}

func (s Store) Stations(ctx context.Context) ([]model.Station, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, name FROM stations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var out []model.Station
	for rows.Next() {
		var st model.Station
		if err := rows.Scan(&st.ID, &st.Name); err != nil {
			return nil, fmt.Errorf("failed to scan station row: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s Store) Edges(ctx context.Context) ([]model.Edge, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT src_node, dst_node, weight
        FROM edges
        ORDER BY edge_id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	defer rows.Close()

	edges := make([]model.Edge, 0, 32)
	for rows.Next() {
		var e model.Edge
		if err := rows.Scan(&e.Src, &e.Dst, &e.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan edge row: %w", err)
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// Table reads the stored network. Station ids must be dense from 0.
func (s Store) Table(ctx context.Context) (network.Table, error) {
	stations, err := s.Stations(ctx)
	if err != nil {
		return network.Table{}, err
	}
	if len(stations) == 0 {
		return network.Table{}, fmt.Errorf("no stations stored")
	}

	names := make([]string, len(stations))
	for i, st := range stations {
		if st.ID != i {
			return network.Table{}, fmt.Errorf("station ids must be 0..%d, found %d at position %d", len(stations)-1, st.ID, i)
		}
		names[i] = st.Name
	}

	edges, err := s.Edges(ctx)
	if err != nil {
		return network.Table{}, err
	}
	return network.Table{Stations: names, Edges: edges}, nil
}

func (s Store) LoadNetwork(ctx context.Context) (*network.Graph, error) {
	t, err := s.Table(ctx)
	if err != nil {
		return nil, err
	}
	return t.Build()
}
