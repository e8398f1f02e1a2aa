package network

import (
	"errors"
	"fmt"

	"github.com/mohinik7/Metro-Route-Optimization/internal/model"
)

var ErrInvalidEdge = errors.New("invalid edge")

// Graph is the undirected weighted station network. It is built once and is
// read-only afterwards, so it can be shared across goroutines.
type Graph struct {
	*Registry
	adj   [][]model.Edge
	edges int
}

// New preallocates a graph for n stations with ids 0..n-1.
func New(n int) *Graph {
	return &Graph{
		Registry: newRegistry(n),
		adj:      make([][]model.Edge, n),
	}
}

// Build constructs a graph from a station list (index = id) and an edge list.
func Build(stations []string, edges []model.Edge) (*Graph, error) {
	g := New(len(stations))
	for id, name := range stations {
		if err := g.AddStation(name, id); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e.Src, e.Dst, e.Weight); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Graph) AddStation(name string, id int) error {
	if name == "" {
		return fmt.Errorf("station %d: empty name", id)
	}
	return g.add(name, id)
}

// AddEdge inserts u-v in both directions. Parallel edges are kept.
func (g *Graph) AddEdge(u, v, weight int) error {
	n := len(g.adj)
	switch {
	case u < 0 || u >= n || v < 0 || v >= n:
		return fmt.Errorf("%w: %d-%d: %w", ErrInvalidEdge, u, v, ErrStationRange)
	case u == v:
		return fmt.Errorf("%w: self loop at %d", ErrInvalidEdge, u)
	case weight <= 0:
		return fmt.Errorf("%w: %d-%d weight %d must be positive", ErrInvalidEdge, u, v, weight)
	}

	g.adj[u] = append(g.adj[u], model.Edge{Src: u, Dst: v, Weight: weight})
	g.adj[v] = append(g.adj[v], model.Edge{Src: v, Dst: u, Weight: weight})
	g.edges++
	return nil
}

// Neighbors returns the outgoing edges of u in insertion order. Callers must
// not modify the returned slice.
func (g *Graph) Neighbors(u int) []model.Edge {
	if u < 0 || u >= len(g.adj) {
		return nil
	}
	return g.adj[u]
}

func (g *Graph) Len() int { return len(g.adj) }

// EdgeCount is the number of undirected edges added.
func (g *Graph) EdgeCount() int { return g.edges }

// Edges lists each undirected edge once, in insertion order per source.
func (g *Graph) Edges() []model.Edge {
	out := make([]model.Edge, 0, g.edges)
	seen := make(map[model.Edge]int)
	for _, list := range g.adj {
		for _, e := range list {
			rev := model.Edge{Src: e.Dst, Dst: e.Src, Weight: e.Weight}
			if seen[rev] > 0 {
				seen[rev]--
				continue
			}
			seen[e]++
			out = append(out, e)
		}
	}
	return out
}
