package algo

import "github.com/mohinik7/Metro-Route-Optimization/internal/model"

// Graph is the read-only adjacency view the path finders run on.
// Station ids are dense in [0, Len()).
type Graph interface {
	Len() int
	Neighbors(u int) []model.Edge
}

func inRange(g Graph, ids ...int) bool {
	for _, id := range ids {
		if id < 0 || id >= g.Len() {
			return false
		}
	}
	return true
}
