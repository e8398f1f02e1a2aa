package algo

import (
	"container/heap"
	"math"

	"github.com/mohinik7/Metro-Route-Optimization/internal/model"
)

type pqItem struct {
	node int
	dist int
	seq  int
}

// pq orders by distance, then by insertion sequence so equal-cost entries
// pop in the order they were pushed.
type pq []pqItem

func (p pq) Len() int { return len(p) }
func (p pq) Less(i, j int) bool {
	if p[i].dist != p[j].dist {
		return p[i].dist < p[j].dist
	}
	return p[i].seq < p[j].seq
}
func (p pq) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

func (p *pq) Push(x any) {
	*p = append(*p, x.(pqItem))
}

func (p *pq) Pop() any {
	old := *p
	n := len(old)
	item := old[n-1]
	*p = old[:n-1]
	return item
}

// Dijkstra returns the minimum-weight path from src to dst, its total weight
// and the number of nodes expanded. A nil path means dst is unreachable.
func Dijkstra(g Graph, src, dst int) (model.Path, int, int) {
	if !inRange(g, src, dst) {
		return nil, 0, 0
	}

	n := g.Len()
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = -1
	}
	dist[src] = 0

	pq := &pq{}
	seq := 0
	heap.Push(pq, pqItem{node: src, dist: 0, seq: seq})
	explored := 0

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pqItem)
		u := cur.node

		if u == dst {
			break
		}
		if cur.dist > dist[u] {
			continue
		}

		explored++

		for _, e := range g.Neighbors(u) {
			nd := dist[u] + e.Weight
			if nd < dist[e.Dst] {
				dist[e.Dst] = nd
				prev[e.Dst] = u
				seq++
				heap.Push(pq, pqItem{node: e.Dst, dist: nd, seq: seq})
			}
		}
	}

	// reconstruct
	path := model.Path{}
	for at := dst; at != -1; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	if path[0] != src {
		return nil, 0, explored
	}
	return path, dist[dst], explored
}

// Weight sums the edge weights along path, taking the lightest edge between
// consecutive stations. ok is false when two consecutive stations are not
// adjacent.
func Weight(g Graph, path model.Path) (total int, ok bool) {
	for i := 1; i < len(path); i++ {
		best := -1
		for _, e := range g.Neighbors(path[i-1]) {
			if e.Dst == path[i] && (best < 0 || e.Weight < best) {
				best = e.Weight
			}
		}
		if best < 0 {
			return 0, false
		}
		total += best
	}
	return total, true
}
