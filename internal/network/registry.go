package network

import (
	"errors"
	"fmt"

	"github.com/mohinik7/Metro-Route-Optimization/internal/model"
)

var (
	ErrStationRange     = errors.New("station id out of range")
	ErrDuplicateStation = errors.New("duplicate station")
)

// Registry is the name<->id bijection for a fixed station set.
type Registry struct {
	ids   map[string]int
	names []string
}

func newRegistry(n int) *Registry {
	return &Registry{
		ids:   make(map[string]int, n),
		names: make([]string, n),
	}
}

func (r *Registry) add(name string, id int) error {
	if id < 0 || id >= len(r.names) {
		return fmt.Errorf("%w: %d (have %d stations)", ErrStationRange, id, len(r.names))
	}
	if prev, ok := r.ids[name]; ok {
		return fmt.Errorf("%w: %q already has id %d", ErrDuplicateStation, name, prev)
	}
	if r.names[id] != "" {
		return fmt.Errorf("%w: id %d already names %q", ErrDuplicateStation, id, r.names[id])
	}
	r.ids[name] = id
	r.names[id] = name
	return nil
}

// ID resolves a station name. Names are matched exactly.
func (r *Registry) ID(name string) (int, bool) {
	id, ok := r.ids[name]
	return id, ok
}

// Name returns the display name for id, or "" when id is out of range.
func (r *Registry) Name(id int) string {
	if id < 0 || id >= len(r.names) {
		return ""
	}
	return r.names[id]
}

// Names maps a path to station names.
func (r *Registry) Names(path model.Path) []string {
	out := make([]string, len(path))
	for i, id := range path {
		out[i] = r.Name(id)
	}
	return out
}

func (r *Registry) Stations() []model.Station {
	out := make([]model.Station, len(r.names))
	for id, name := range r.names {
		out[id] = model.Station{ID: id, Name: name}
	}
	return out
}
