package model

type Station struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Edge is one direction of an undirected connection. The network stores
// both directions with the same weight.
type Edge struct {
	Src    int `json:"src" yaml:"src"`
	Dst    int `json:"dst" yaml:"dst"`
	Weight int `json:"weight" yaml:"weight"`
}

// Path is an ordered sequence of station ids, start first.
type Path []int

type RouteResponse struct {
	Found         bool     `json:"found"`
	Path          Path     `json:"path"`
	Stations      []string `json:"stations"`
	Route         string   `json:"route,omitempty"`
	Total         int      `json:"total"`
	ExploredNodes int      `json:"explored_nodes"`
	CacheHit      bool     `json:"cache_hit"`
}

type AlternativeRoute struct {
	Index    int      `json:"index"`
	Path     Path     `json:"path"`
	Stations []string `json:"stations"`
	Route    string   `json:"route"`
	Price    float64  `json:"price"`
}

type AlternativesResponse struct {
	Routes   []AlternativeRoute `json:"routes"`
	Count    int                `json:"count"`
	CacheHit bool               `json:"cache_hit"`
}

type BillResponse struct {
	ID        string  `json:"id"`
	Found     bool    `json:"found"`
	Passenger string  `json:"passenger"`
	Phone     int64   `json:"phone"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Path      Path    `json:"path,omitempty"`
	Amount    float64 `json:"amount"`
}

type TransferResponse struct {
	RouteResponse
	Quote  float64      `json:"quote"`
	Bill   BillResponse `json:"bill"`
	Billed float64      `json:"billed"`
}

type ChangeResponse struct {
	OnPath    bool             `json:"on_path"`
	Warning   string           `json:"warning,omitempty"`
	Leg       TransferResponse `json:"leg"`
	FirstLeg  float64          `json:"first_leg"`
	SecondLeg float64          `json:"second_leg"`
	Amount    float64          `json:"amount"`
	Found     bool             `json:"found"`
	Billed    float64          `json:"billed"`
}
