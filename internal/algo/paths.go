package algo

import "github.com/mohinik7/Metro-Route-Optimization/internal/model"

type frame struct {
	node int
	next int // index of the next neighbor to try
}

// EachSimplePath walks every simple path from src to dst depth first, in
// adjacency order, and calls fn with a fresh copy of each one. Returning false
// from fn stops the walk. The number of paths is exponential in the worst
// case; callers that need bounded output stop early through fn.
func EachSimplePath(g Graph, src, dst int, fn func(model.Path) bool) {
	if !inRange(g, src, dst) {
		return
	}

	onPath := make([]bool, g.Len())
	stack := []frame{{node: src}}
	path := model.Path{src}
	onPath[src] = true

	if src == dst {
		fn(append(model.Path(nil), path...))
		return
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		adj := g.Neighbors(top.node)

		if top.next >= len(adj) {
			onPath[top.node] = false
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
			continue
		}

		v := adj[top.next].Dst
		top.next++
		if onPath[v] {
			continue
		}

		if v == dst {
			if !fn(append(append(model.Path(nil), path...), v)) {
				return
			}
			continue
		}

		onPath[v] = true
		path = append(path, v)
		stack = append(stack, frame{node: v})
	}
}

// AllSimplePaths collects every simple path from src to dst. The result is
// empty when dst is unreachable.
func AllSimplePaths(g Graph, src, dst int) []model.Path {
	var out []model.Path
	EachSimplePath(g, src, dst, func(p model.Path) bool {
		out = append(out, p)
		return true
	})
	return out
}

// Contains reports whether station appears anywhere in path.
func Contains(path model.Path, station int) bool {
	for _, id := range path {
		if id == station {
			return true
		}
	}
	return false
}
