// Package fare prices routes. Three formulas coexist and are kept apart on
// purpose: the alternatives listing, the minimal-transfer quote and the
// discounted bill. All of them bill the number of stations on the route, not
// the edge weight.
package fare

import "github.com/mohinik7/Metro-Route-Optimization/internal/model"

const (
	BaseFare         = 20.0
	PerStation       = 1.5
	StudentMultiplier = 0.9
	SeniorMultiplier = 0.85
)

// Listing is the price shown next to each alternative route: stations x 1.5.
func Listing(path model.Path) float64 {
	return float64(len(path)) * PerStation
}

// Quote is the undiscounted minimal-transfer price: base + stations x 1.5.
func Quote(path model.Path) float64 {
	return BaseFare + float64(len(path))*PerStation
}

// Discounted is the billed fare. The student discount is applied before the
// senior discount and both may apply.
func Discounted(path model.Path, student, senior bool) float64 {
	total := Quote(path)
	if student {
		total *= StudentMultiplier
	}
	if senior {
		total *= SeniorMultiplier
	}
	return total
}

// ForPassenger bills path using the passenger's eligibility flags.
func ForPassenger(path model.Path, p model.Passenger) float64 {
	return Discounted(path, p.Student, p.Senior)
}
