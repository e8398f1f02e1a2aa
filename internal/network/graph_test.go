package network

import (
	"errors"
	"strings"
	"testing"

	"github.com/mohinik7/Metro-Route-Optimization/internal/model"
)

func TestAddEdgeIsSymmetric(t *testing.T) {
	g := New(2)
	mustAddStation(t, g, "A", 0)
	mustAddStation(t, g, "B", 1)

	if err := g.AddEdge(0, 1, 7); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	if got := g.Neighbors(0); len(got) != 1 || got[0] != (model.Edge{Src: 0, Dst: 1, Weight: 7}) {
		t.Errorf("neighbors of 0 = %v", got)
	}
	if got := g.Neighbors(1); len(got) != 1 || got[0] != (model.Edge{Src: 1, Dst: 0, Weight: 7}) {
		t.Errorf("neighbors of 1 = %v", got)
	}
}

func TestAddEdgeKeepsParallelEdges(t *testing.T) {
	g := New(2)
	mustAddStation(t, g, "A", 0)
	mustAddStation(t, g, "B", 1)
	g.AddEdge(0, 1, 5)
	g.AddEdge(1, 0, 2)

	if n := len(g.Neighbors(0)); n != 2 {
		t.Errorf("expected 2 parallel edges from 0, got %d", n)
	}
	if g.EdgeCount() != 2 || len(g.Edges()) != 2 {
		t.Errorf("EdgeCount=%d Edges=%v", g.EdgeCount(), g.Edges())
	}
}

func TestAddEdgeRejectsInvalid(t *testing.T) {
	g := New(3)
	for _, c := range []struct {
		name    string
		u, v, w int
	}{
		{"self loop", 1, 1, 3},
		{"zero weight", 0, 1, 0},
		{"negative weight", 0, 1, -4},
		{"out of range", 0, 3, 1},
		{"negative id", -1, 0, 1},
	} {
		if err := g.AddEdge(c.u, c.v, c.w); !errors.Is(err, ErrInvalidEdge) {
			t.Errorf("%s: expected ErrInvalidEdge, got %v", c.name, err)
		}
	}
	if g.EdgeCount() != 0 {
		t.Errorf("rejected edges must not be stored, have %d", g.EdgeCount())
	}
}

func TestAddStationValidation(t *testing.T) {
	g := New(2)
	mustAddStation(t, g, "A", 0)

	if err := g.AddStation("B", 2); !errors.Is(err, ErrStationRange) {
		t.Errorf("expected ErrStationRange, got %v", err)
	}
	if err := g.AddStation("A", 1); !errors.Is(err, ErrDuplicateStation) {
		t.Errorf("expected ErrDuplicateStation for reused name, got %v", err)
	}
	if err := g.AddStation("C", 0); !errors.Is(err, ErrDuplicateStation) {
		t.Errorf("expected ErrDuplicateStation for reused id, got %v", err)
	}
}

func TestRegistryBijection(t *testing.T) {
	g := Default()
	if g.Len() != 22 {
		t.Fatalf("expected 22 stations, got %d", g.Len())
	}
	if g.EdgeCount() != 24 {
		t.Errorf("expected 24 edges, got %d", g.EdgeCount())
	}

	for _, s := range g.Stations() {
		id, ok := g.ID(s.Name)
		if !ok || id != s.ID {
			t.Errorf("station %q: ID() = %d,%v want %d", s.Name, id, ok, s.ID)
		}
	}

	if _, ok := g.ID("central secretariat"); ok {
		t.Error("lookup must be exact-match")
	}
	if g.Name(99) != "" {
		t.Error("out of range name should be empty")
	}
}

func TestLoadYAML(t *testing.T) {
	src := `
stations: [X, Y, Z]
edges:
  - {src: 0, dst: 1, weight: 2}
  - {src: 1, dst: 2, weight: 3}
`
	g, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.Len() != 3 || g.EdgeCount() != 2 {
		t.Fatalf("got %d stations %d edges", g.Len(), g.EdgeCount())
	}
	if names := g.Names(model.Path{0, 1, 2}); strings.Join(names, ",") != "X,Y,Z" {
		t.Errorf("Names = %v", names)
	}
}

func TestLoadYAMLRejectsBadEdge(t *testing.T) {
	src := `
stations: [X, Y]
edges:
  - {src: 0, dst: 1, weight: -1}
`
	if _, err := Load(strings.NewReader(src)); !errors.Is(err, ErrInvalidEdge) {
		t.Errorf("expected ErrInvalidEdge, got %v", err)
	}
	if _, err := Load(strings.NewReader("edges: []")); err == nil {
		t.Error("expected error for empty station list")
	}
}

func mustAddStation(t *testing.T, g *Graph, name string, id int) {
	t.Helper()
	if err := g.AddStation(name, id); err != nil {
		t.Fatalf("AddStation(%q, %d): %v", name, id, err)
	}
}
