package matching

import (
	"math"
	"testing"

	"taskhive/models"
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	p := models.Coordinate{Lat: 40.7128, Lng: -74.0060}
	if d := DistanceKm(p, p); d != 0 {
		t.Errorf("DistanceKm(p, p) = %v, want 0", d)
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	a := models.Coordinate{Lat: 51.5074, Lng: -0.1278}
	b := models.Coordinate{Lat: 48.8566, Lng: 2.3522}
	if d1, d2 := DistanceKm(a, b), DistanceKm(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Errorf("DistanceKm not symmetric: %v vs %v", d1, d2)
	}
}

func TestDistanceKmKnownValues(t *testing.T) {
	tests := []struct {
		name      string
		a, b      models.Coordinate
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "0.03 degrees longitude at equator",
			a:         models.Coordinate{Lat: 0, Lng: 0},
			b:         models.Coordinate{Lat: 0, Lng: 0.03},
			wantKm:    3.34,
			tolerance: 0.05,
		},
		{
			name:      "0.06 degrees longitude at equator",
			a:         models.Coordinate{Lat: 0, Lng: 0},
			b:         models.Coordinate{Lat: 0, Lng: 0.06},
			wantKm:    6.67,
			tolerance: 0.05,
		},
		{
			name:      "one degree latitude",
			a:         models.Coordinate{Lat: 0, Lng: 0},
			b:         models.Coordinate{Lat: 1, Lng: 0},
			wantKm:    111.19,
			tolerance: 0.5,
		},
		{
			name:      "London to Paris",
			a:         models.Coordinate{Lat: 51.5074, Lng: -0.1278},
			b:         models.Coordinate{Lat: 48.8566, Lng: 2.3522},
			wantKm:    343.5,
			tolerance: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("DistanceKm() = %v, want %v +/- %v", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		name      string
		c         models.Coordinate
		wantField string
	}{
		{name: "valid", c: models.Coordinate{Lat: 40.7, Lng: -74.0}},
		{name: "valid extremes", c: models.Coordinate{Lat: -90, Lng: 180}},
		{name: "latitude too high", c: models.Coordinate{Lat: 91, Lng: 0}, wantField: "lat"},
		{name: "latitude too low", c: models.Coordinate{Lat: -90.01, Lng: 0}, wantField: "lat"},
		{name: "longitude too low", c: models.Coordinate{Lat: 0, Lng: -181}, wantField: "lng"},
		{name: "longitude too high", c: models.Coordinate{Lat: 0, Lng: 180.5}, wantField: "lng"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinate(tt.c)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateCoordinate() = %v, want nil", err)
				}
				return
			}
			vErr, ok := err.(ValidationError)
			if !ok {
				t.Fatalf("ValidateCoordinate() = %v, want ValidationError", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", vErr.Field, tt.wantField)
			}
		})
	}
}
