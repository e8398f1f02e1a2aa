package model

const (
	// StudentAgeBelow is the exclusive upper age bound for the student discount.
	StudentAgeBelow = 25
	// SeniorAgeAbove is the exclusive lower age bound for the senior discount.
	SeniorAgeAbove = 60
)

// Passenger is an immutable snapshot of the traveller. Eligibility is derived
// once from the age at creation. The billed amount lives in the owning
// session, not here.
type Passenger struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Phone   int64  `json:"phone"`
	Student bool   `json:"student"`
	Senior  bool   `json:"senior"`
}

func NewPassenger(name string, age int, phone int64) Passenger {
	return Passenger{
		Name:    name,
		Age:     age,
		Phone:   phone,
		Student: age < StudentAgeBelow,
		Senior:  age > SeniorAgeAbove,
	}
}
