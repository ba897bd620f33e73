package matching

import (
	"fmt"
	"math"

	"taskhive/models"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// ValidationError signals malformed input to a pure computation. It is never
// retried; callers surface it immediately.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// DistanceKm calculates the great-circle distance (in km) between two points.
// Inputs must already be valid coordinates; use ValidateCoordinate at the
// boundary where untrusted values enter.
func DistanceKm(a, b models.Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lng - a.Lng) * math.Pi / 180
	lat1Rad := a.Lat * math.Pi / 180
	lat2Rad := b.Lat * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// ValidateCoordinate checks that a point is a real place on the globe.
func ValidateCoordinate(c models.Coordinate) error {
	if c.Lat < -90 || c.Lat > 90 {
		return ValidationError{Field: "lat", Reason: fmt.Sprintf("latitude %v out of range [-90,90]", c.Lat)}
	}
	if c.Lng < -180 || c.Lng > 180 {
		return ValidationError{Field: "lng", Reason: fmt.Sprintf("longitude %v out of range [-180,180]", c.Lng)}
	}
	return nil
}
