package models

// Coordinate is a bare lat/lng pair used by the distance math.
type Coordinate struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Location is a point attached to a request (buyer side) or a provider (base location).
// Requests in unlimited-radius categories may carry no location at all.
type Location struct {
	Lat     float64 `bson:"lat" json:"lat"`
	Lng     float64 `bson:"lng" json:"lng"`
	City    string  `bson:"city,omitempty" json:"city,omitempty"`
	Address string  `bson:"address,omitempty" json:"address,omitempty"`
}

// Coordinate returns the bare point of a location.
func (l Location) Coordinate() Coordinate {
	return Coordinate{Lat: l.Lat, Lng: l.Lng}
}

// BudgetRange is the buyer's declared budget for a request.
type BudgetRange struct {
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}
