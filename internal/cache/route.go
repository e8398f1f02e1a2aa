package cache

import (
	"container/list"
	"sync"

	"github.com/mohinik7/Metro-Route-Optimization/internal/model"
)

// defaultRouteCapacity is the default number of routes the cache will hold.
const defaultRouteCapacity = 2048

const (
	AlgoDijkstra = "dijkstra"
	AlgoAllPaths = "allpaths"
)

type RouteKey struct {
	Src, Dst int
	Algo     string
	Epoch    uint64
}

type routeEntry struct {
	key RouteKey
	val []model.Path
}

// RouteCache is a bounded LRU of computed routes. Keys carry an epoch;
// BumpEpoch makes every older entry unreachable and lets LRU age it out.
// It's safe for concurrent use.
type RouteCache struct {
	mu       sync.Mutex
	epoch    uint64
	m        map[RouteKey]*list.Element
	ll       *list.List
	capacity int
	// stats
	puts      int
	gets      int
	hits      int
	evictions int
}

// NewRouteCache returns a route cache with capacity entries. Non-positive
// capacity selects the default.
func NewRouteCache(capacity int) *RouteCache {
	if capacity <= 0 {
		capacity = defaultRouteCapacity
	}
	return &RouteCache{
		m:        make(map[RouteKey]*list.Element, capacity),
		ll:       list.New(),
		capacity: capacity,
	}
}

// Key builds a key at the current epoch.
func (c *RouteCache) Key(src, dst int, algo string) RouteKey {
	return RouteKey{Src: src, Dst: dst, Algo: algo, Epoch: c.Epoch()}
}

func (c *RouteCache) Get(k RouteKey) ([]model.Path, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gets++
	if el, ok := c.m[k]; ok {
		c.hits++
		c.ll.MoveToFront(el)
		return el.Value.(routeEntry).val, true
	}
	return nil, false
}

// Put stores v under k, evicting the least recently used entry when full.
func (c *RouteCache) Put(k RouteKey, v []model.Path) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.puts++
	if el, ok := c.m[k]; ok {
		el.Value = routeEntry{key: k, val: v}
		c.ll.MoveToFront(el)
		return
	}

	c.m[k] = c.ll.PushFront(routeEntry{key: k, val: v})

	if c.ll.Len() > c.capacity {
		tail := c.ll.Back()
		delete(c.m, tail.Value.(routeEntry).key)
		c.ll.Remove(tail)
		c.evictions++
	}
}

func (c *RouteCache) Epoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch
}

func (c *RouteCache) BumpEpoch() {
	c.mu.Lock()
	c.epoch++
	c.mu.Unlock()
}

// Clear drops all entries and resets stats. The epoch keeps counting.
func (c *RouteCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = make(map[RouteKey]*list.Element, c.capacity)
	c.ll.Init()
	c.puts, c.gets, c.hits, c.evictions = 0, 0, 0, 0
}

func (c *RouteCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

type Stats struct {
	Gets      int    `json:"gets"`
	Hits      int    `json:"hits"`
	Puts      int    `json:"puts"`
	Evictions int    `json:"evictions"`
	Entries   int    `json:"entries"`
	Epoch     uint64 `json:"epoch"`
}

func (c *RouteCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Gets:      c.gets,
		Hits:      c.hits,
		Puts:      c.puts,
		Evictions: c.evictions,
		Entries:   c.ll.Len(),
		Epoch:     c.epoch,
	}
}
