package planner

import (
	"errors"
	"math"
	"testing"

	"github.com/mohinik7/Metro-Route-Optimization/internal/model"
	"github.com/mohinik7/Metro-Route-Optimization/internal/network"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func newPlanner(t *testing.T) *Planner {
	t.Helper()
	return New(network.Default())
}

func TestRouteRendersReferenceScenario(t *testing.T) {
	p := newPlanner(t)

	r, err := p.Route("CENTRAL SECRETARIAT", "RAJIV CHOWK")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if !r.Found || r.Total != 4 {
		t.Fatalf("expected found route with total 4, got %+v", r)
	}
	want := "CENTRAL SECRETARIAT -> PATEL CHOWK -> RAJIV CHOWK -> End"
	if got := r.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRouteUnknownStation(t *testing.T) {
	p := newPlanner(t)

	_, err := p.Route("CENTRAL SECRETARIAT", "ATLANTIS")
	if !errors.Is(err, ErrUnknownStation) {
		t.Fatalf("expected ErrUnknownStation, got %v", err)
	}
	var se *StationError
	if !errors.As(err, &se) || len(se.Names) != 1 || se.Names[0] != "ATLANTIS" {
		t.Errorf("expected StationError naming ATLANTIS, got %v", err)
	}

	_, err = p.Route("NOWHERE", "ATLANTIS")
	if !errors.As(err, &se) || len(se.Names) != 2 {
		t.Errorf("expected both names reported, got %v", err)
	}
}

func TestRouteNoPath(t *testing.T) {
	g, err := network.Build([]string{"A", "B", "C"}, []model.Edge{{Src: 0, Dst: 1, Weight: 1}})
	if err != nil {
		t.Fatal(err)
	}
	p := New(g)

	r, err := p.Route("A", "C")
	if err != nil {
		t.Fatalf("no path must not be an error: %v", err)
	}
	if r.Found || r.String() != "No path found." {
		t.Errorf("expected no path, got %+v", r)
	}

	alts, err := p.Alternatives("A", "C")
	if err != nil || len(alts) != 0 {
		t.Errorf("expected no alternatives, got %v (%v)", alts, err)
	}

	b, err := p.GenerateBill(model.NewPassenger("X", 40, 1), "A", "C")
	if err != nil || b.Found || b.Amount != 0 {
		t.Errorf("expected empty bill, got %+v (%v)", b, err)
	}
}

func TestAlternativesPricing(t *testing.T) {
	p := newPlanner(t)

	alts, err := p.Alternatives("CENTRAL SECRETARIAT", "RAJIV CHOWK")
	if err != nil {
		t.Fatalf("Alternatives: %v", err)
	}
	if len(alts) < 2 {
		t.Fatalf("expected at least 2 alternatives, got %d", len(alts))
	}
	for i, a := range alts {
		if a.Index != i+1 {
			t.Errorf("alternative %d has index %d", i, a.Index)
		}
		if !approx(a.Price, float64(len(a.Path))*1.5) {
			t.Errorf("alternative %d priced %v for %d stations", a.Index, a.Price, len(a.Path))
		}
		if a.Stations[0] != "CENTRAL SECRETARIAT" || a.Stations[len(a.Stations)-1] != "RAJIV CHOWK" {
			t.Errorf("alternative %d has wrong endpoints: %v", a.Index, a.Stations)
		}
	}
	if first := alts[0].Path; len(first) != 3 || first[1] != 1 {
		t.Errorf("first alternative should go via PATEL CHOWK, got %v", first)
	}
}

func TestAlternativesCap(t *testing.T) {
	p := newPlanner(t)
	p.MaxAlternatives = 2

	alts, err := p.Alternatives("CENTRAL SECRETARIAT", "LAJPAT NAGAR")
	if err != nil {
		t.Fatal(err)
	}
	if len(alts) != 2 {
		t.Errorf("expected cap of 2, got %d", len(alts))
	}
}

func TestMinimalTransfer(t *testing.T) {
	p := newPlanner(t)
	senior := model.NewPassenger("Kamla", 70, 9811111111)

	tr, err := p.MinimalTransfer(senior, "CENTRAL SECRETARIAT", "RAJIV CHOWK")
	if err != nil {
		t.Fatalf("MinimalTransfer: %v", err)
	}
	if !tr.Found || len(tr.Path) != 3 {
		t.Fatalf("unexpected route %+v", tr.Route)
	}
	if !approx(tr.Quote, 24.5) {
		t.Errorf("quote = %v, want 24.5", tr.Quote)
	}
	if !tr.Bill.Found || !approx(tr.Bill.Amount, 20.825) {
		t.Errorf("bill = %+v, want 20.825", tr.Bill)
	}
	if tr.Bill.Passenger != "Kamla" || tr.Bill.Phone != 9811111111 {
		t.Errorf("bill passenger details wrong: %+v", tr.Bill)
	}
}

func TestGenerateBillIdempotent(t *testing.T) {
	p := newPlanner(t)
	pass := model.NewPassenger("Dev", 19, 9822222222)

	a, err := p.GenerateBill(pass, "JANPATH", "JOR BAGH")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := p.GenerateBill(pass, "JANPATH", "JOR BAGH")
	if a.Amount != b.Amount {
		t.Errorf("bill changed between calls: %v vs %v", a.Amount, b.Amount)
	}
	if a.ID == b.ID {
		t.Error("each bill should carry its own receipt id")
	}
}

func TestOnPath(t *testing.T) {
	p := newPlanner(t)

	for _, mid := range []string{"CENTRAL SECRETARIAT", "PATEL CHOWK", "RAJIV CHOWK"} {
		ok, err := p.OnPath("CENTRAL SECRETARIAT", mid, "RAJIV CHOWK")
		if err != nil || !ok {
			t.Errorf("%s should be on the path (err=%v)", mid, err)
		}
	}
	if ok, _ := p.OnPath("CENTRAL SECRETARIAT", "ASHRAM", "RAJIV CHOWK"); ok {
		t.Error("ASHRAM is not on CENTRAL SECRETARIAT -> RAJIV CHOWK")
	}
	if _, err := p.OnPath("CENTRAL SECRETARIAT", "ATLANTIS", "RAJIV CHOWK"); !errors.Is(err, ErrUnknownStation) {
		t.Errorf("expected ErrUnknownStation, got %v", err)
	}
}

func TestChangeRouteSumsLegs(t *testing.T) {
	p := newPlanner(t)
	pass := model.NewPassenger("Neha", 40, 9833333333)

	c, err := p.ChangeRoute(pass, "CENTRAL SECRETARIAT", "PATEL CHOWK", "RAJIV CHOWK")
	if err != nil {
		t.Fatalf("ChangeRoute: %v", err)
	}
	if !c.OnPath || !c.Found {
		t.Fatalf("unexpected change %+v", c)
	}
	// start->midway has 2 stations, midway->dest has 2 stations
	if !approx(c.FirstLeg, 23) || !approx(c.SecondLeg, 23) || !approx(c.Amount, 46) {
		t.Errorf("legs %v + %v = %v, want 23 + 23 = 46", c.FirstLeg, c.SecondLeg, c.Amount)
	}
	if got := c.Leg.String(); got != "PATEL CHOWK -> RAJIV CHOWK -> End" {
		t.Errorf("leg rendered %q", got)
	}
}

func TestChangeRouteOffPathProceeds(t *testing.T) {
	p := newPlanner(t)
	pass := model.NewPassenger("Neha", 40, 9833333333)

	c, err := p.ChangeRoute(pass, "CENTRAL SECRETARIAT", "ASHRAM", "RAJIV CHOWK")
	if err != nil {
		t.Fatalf("off-route midway must only warn, got %v", err)
	}
	if c.OnPath {
		t.Error("ASHRAM should be reported as off the route")
	}
	if !c.Found || c.Amount <= 0 {
		t.Errorf("change should still be billed: %+v", c)
	}
}

func TestChangeRouteStrict(t *testing.T) {
	p := newPlanner(t)
	p.StrictChange = true

	c, err := p.ChangeRoute(model.NewPassenger("Neha", 40, 1), "CENTRAL SECRETARIAT", "ASHRAM", "RAJIV CHOWK")
	if !errors.Is(err, ErrMidwayOffRoute) {
		t.Fatalf("expected ErrMidwayOffRoute, got %v", err)
	}
	if c.Found || c.Amount != 0 {
		t.Errorf("strict rejection must not bill: %+v", c)
	}
}
