// Package planner answers the rider-facing questions over a station network:
// route details, alternative routes, the minimal-transfer path with billing and
// a mid-journey change of destination.
//
// The planner is stateless apart from its read-only graph and is safe for
// concurrent use. Billed amounts are returned to the caller, which owns the
// passenger's session.
package planner

import (
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/mohinik7/Metro-Route-Optimization/internal/algo"
	"github.com/mohinik7/Metro-Route-Optimization/internal/fare"
	"github.com/mohinik7/Metro-Route-Optimization/internal/model"
	"github.com/mohinik7/Metro-Route-Optimization/internal/network"
)

type Planner struct {
	Net *network.Graph

	// MaxAlternatives caps the alternative route listing. Zero lists all.
	MaxAlternatives int
	// StrictChange rejects a route change whose midway station is off the
	// original route instead of warning and continuing.
	StrictChange bool
}

func New(g *network.Graph) *Planner {
	return &Planner{Net: g}
}

// Route is a resolved shortest path. Found is false when the stations are
// not connected.
type Route struct {
	Found    bool
	Path     model.Path
	Stations []string
	Total    int
	Explored int
}

func (r Route) String() string {
	if !r.Found {
		return "No path found."
	}
	return Render(r.Stations)
}

type Alternative struct {
	Index    int
	Path     model.Path
	Stations []string
	Price    float64
}

type Bill struct {
	ID        uuid.UUID
	Found     bool
	Passenger string
	Phone     int64
	From, To  string
	Path      model.Path
	Amount    float64
}

type Transfer struct {
	Route
	Quote float64
	Bill  Bill
}

type Change struct {
	OnPath bool
	Leg    Transfer
	// FirstLeg and SecondLeg are the discounted fares for start->midway and
	// midway->destination. Amount is their sum and replaces the leg's bill.
	FirstLeg  float64
	SecondLeg float64
	Amount    float64
	Found     bool
}

// Render joins station names in travel order and terminates with "End".
func Render(names []string) string {
	var b strings.Builder
	for _, n := range names {
		b.WriteString(n)
		b.WriteString(" -> ")
	}
	b.WriteString("End")
	return b.String()
}

func (p *Planner) resolve(names ...string) ([]int, error) {
	ids := make([]int, len(names))
	var bad []string
	for i, name := range names {
		id, ok := p.Net.ID(name)
		if !ok {
			bad = append(bad, name)
			continue
		}
		ids[i] = id
	}
	if len(bad) > 0 {
		return nil, &StationError{Names: bad}
	}
	return ids, nil
}

func (p *Planner) shortest(src, dst int) Route {
	path, total, explored := algo.Dijkstra(p.Net, src, dst)
	if path == nil {
		return Route{Explored: explored}
	}
	return Route{
		Found:    true,
		Path:     path,
		Stations: p.Net.Names(path),
		Total:    total,
		Explored: explored,
	}
}

// Route computes the shortest path between two named stations.
func (p *Planner) Route(start, end string) (Route, error) {
	ids, err := p.resolve(start, end)
	if err != nil {
		return Route{}, err
	}
	return p.shortest(ids[0], ids[1]), nil
}

// Alternatives lists every simple path between the stations, numbered from 1
// and priced with fare.Listing.
func (p *Planner) Alternatives(start, end string) ([]Alternative, error) {
	ids, err := p.resolve(start, end)
	if err != nil {
		return nil, err
	}

	var out []Alternative
	algo.EachSimplePath(p.Net, ids[0], ids[1], func(path model.Path) bool {
		out = append(out, Alternative{
			Index:    len(out) + 1,
			Path:     path,
			Stations: p.Net.Names(path),
			Price:    fare.Listing(path),
		})
		return p.MaxAlternatives <= 0 || len(out) < p.MaxAlternatives
	})
	return out, nil
}

// GenerateBill prices the shortest route for the passenger with discounts.
// It does not record anything; the same inputs always give the same amount.
func (p *Planner) GenerateBill(pass model.Passenger, start, end string) (Bill, error) {
	ids, err := p.resolve(start, end)
	if err != nil {
		return Bill{}, err
	}
	return p.bill(pass, ids[0], ids[1]), nil
}

func (p *Planner) bill(pass model.Passenger, src, dst int) Bill {
	b := Bill{
		ID:        uuid.New(),
		Passenger: pass.Name,
		Phone:     pass.Phone,
		From:      p.Net.Name(src),
		To:        p.Net.Name(dst),
	}
	path, _, _ := algo.Dijkstra(p.Net, src, dst)
	if path == nil {
		return b
	}
	b.Found = true
	b.Path = path
	b.Amount = fare.ForPassenger(path, pass)
	return b
}

// MinimalTransfer returns the shortest path with its undiscounted quote and
// the passenger's discounted bill. The caller records Bill.Amount.
func (p *Planner) MinimalTransfer(pass model.Passenger, start, end string) (Transfer, error) {
	ids, err := p.resolve(start, end)
	if err != nil {
		return Transfer{}, err
	}
	return p.minimalTransfer(pass, ids[0], ids[1]), nil
}

func (p *Planner) minimalTransfer(pass model.Passenger, src, dst int) Transfer {
	r := p.shortest(src, dst)
	t := Transfer{Route: r}
	if !r.Found {
		return t
	}
	t.Quote = fare.Quote(r.Path)
	t.Bill = p.bill(pass, src, dst)
	return t
}

// OnPath reports whether midway lies on the shortest path from start to end.
func (p *Planner) OnPath(start, midway, end string) (bool, error) {
	ids, err := p.resolve(start, midway, end)
	if err != nil {
		return false, err
	}
	return p.onPath(ids[0], ids[1], ids[2]), nil
}

func (p *Planner) onPath(src, mid, dst int) bool {
	path, _, _ := algo.Dijkstra(p.Net, src, dst)
	return algo.Contains(path, mid)
}

// ChangeRoute re-plans a journey that leaves the train at midway and
// continues to dest. A midway station off the start->dest route is logged
// and the change still goes ahead, unless StrictChange is set. The caller
// records Amount when Found is true.
func (p *Planner) ChangeRoute(pass model.Passenger, start, midway, dest string) (Change, error) {
	ids, err := p.resolve(start, midway, dest)
	if err != nil {
		return Change{}, err
	}
	src, mid, dst := ids[0], ids[1], ids[2]

	c := Change{OnPath: p.onPath(src, mid, dst)}
	if !c.OnPath {
		if p.StrictChange {
			return c, ErrMidwayOffRoute
		}
		log.Printf("Warning: midway station %s is not on the path from %s to %s", midway, start, dest)
	}

	c.Leg = p.minimalTransfer(pass, mid, dst)

	first := p.bill(pass, src, mid)
	second := p.bill(pass, mid, dst)
	if !first.Found || !second.Found {
		return c, nil
	}
	c.Found = true
	c.FirstLeg = first.Amount
	c.SecondLeg = second.Amount
	c.Amount = first.Amount + second.Amount
	return c, nil
}
