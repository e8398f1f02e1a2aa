package db

import (
	"context"
	"testing"

	"github.com/mohinik7/Metro-Route-Optimization/internal/model"
	"github.com/mohinik7/Metro-Route-Optimization/internal/network"
)

func openMemory(t *testing.T) Store {
	t.Helper()
	conn, err := Open(DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	s := Store{DB: conn, Driver: DriverSQLite}
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	return s
}

func TestSeedAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	want := network.DefaultTable()
	if err := s.Seed(ctx, want); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	g, err := s.LoadNetwork(ctx)
	if err != nil {
		t.Fatalf("LoadNetwork: %v", err)
	}
	if g.Len() != len(want.Stations) || g.EdgeCount() != len(want.Edges) {
		t.Fatalf("loaded %d stations %d edges, want %d %d",
			g.Len(), g.EdgeCount(), len(want.Stations), len(want.Edges))
	}
	if id, ok := g.ID("RAJIV CHOWK"); !ok || id != 2 {
		t.Errorf("RAJIV CHOWK resolved to %d,%v", id, ok)
	}
}

func TestSeedReplacesContents(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	if err := s.Seed(ctx, network.DefaultTable()); err != nil {
		t.Fatal(err)
	}
	small := network.Table{
		Stations: []string{"A", "B"},
		Edges:    []model.Edge{{Src: 0, Dst: 1, Weight: 3}},
	}
	if err := s.Seed(ctx, small); err != nil {
		t.Fatal(err)
	}

	edges, err := s.Edges(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 1 || edges[0] != (model.Edge{Src: 0, Dst: 1, Weight: 3}) {
		t.Errorf("unexpected edges after reseed: %v", edges)
	}
}

func TestSeedRejectsInvalidNetwork(t *testing.T) {
	s := openMemory(t)
	bad := network.Table{
		Stations: []string{"A", "B"},
		Edges:    []model.Edge{{Src: 0, Dst: 0, Weight: 1}},
	}
	if err := s.Seed(context.Background(), bad); err == nil {
		t.Error("expected error for self loop")
	}
}

func TestTableRequiresDenseIDs(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	if _, err := s.DB.ExecContext(ctx, `INSERT INTO stations (id, name) VALUES (0, 'A'), (2, 'C')`); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Table(ctx); err == nil {
		t.Error("expected error for gap in station ids")
	}
}

func TestEmptyStore(t *testing.T) {
	if _, err := openMemory(t).LoadNetwork(context.Background()); err == nil {
		t.Error("expected error for empty store")
	}
}

func TestRebind(t *testing.T) {
	q := `INSERT INTO edges (src_node, dst_node, weight) VALUES (?, ?, ?)`
	if got := rebind(DriverPostgres, q); got != `INSERT INTO edges (src_node, dst_node, weight) VALUES ($1, $2, $3)` {
		t.Errorf("postgres rebind = %q", got)
	}
	if got := rebind(DriverMySQL, q); got != q {
		t.Errorf("mysql query should be unchanged, got %q", got)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open("oracle", "x"); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
