package domain

import (
	"errors"
	"math"
	"testing"
)

func sampleRoute() RouteDefinition {
	return RouteDefinition{
		ID:          "aerial_general",
		ServiceType: ServiceAerial,
		CargoType:   CargoGeneral,
		TotalPoints: 3,
		Checkpoints: []Checkpoint{
			{Order: 1, Place: "BODEGA", Phase: PhaseFirstMile, Coords: Coordinates{Lat: 22.5, Lon: 113.8}},
			{Order: 2, Place: "BODEGA", Phase: PhaseFirstMile, Coords: Coordinates{Lat: 22.5, Lon: 113.8}},
			{Order: 3, Place: "AEROPUERTO", Phase: PhaseCustomsOrigin, Coords: Coordinates{Lat: 22.6, Lon: 113.9}},
		},
	}
}

func TestRouteValidate(t *testing.T) {
	if err := sampleRoute().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	empty := RouteDefinition{ID: "maritime_general", ServiceType: ServiceMaritime, CargoType: CargoGeneral}
	if err := empty.Validate(); err != nil {
		t.Fatalf("empty route should be accepted, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(r *RouteDefinition)
	}{
		{"id mismatch", func(r *RouteDefinition) { r.ID = "aerial_frozen" }},
		{"empty id", func(r *RouteDefinition) { r.ID = "" }},
		{"total mismatch", func(r *RouteDefinition) { r.TotalPoints = 4 }},
		{"gap in orders", func(r *RouteDefinition) { r.Checkpoints[2].Order = 4 }},
		{"duplicate order", func(r *RouteDefinition) { r.Checkpoints[1].Order = 1 }},
		{"unknown phase", func(r *RouteDefinition) { r.Checkpoints[0].Phase = "air" }},
		{"bad latitude", func(r *RouteDefinition) { r.Checkpoints[0].Coords.Lat = 91 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sampleRoute()
			tt.mutate(&r)

			err := r.Validate()
			if !errors.Is(err, ErrInvalidRoute) {
				t.Fatalf("Validate() = %v, want ErrInvalidRoute", err)
			}
		})
	}
}

func TestRouteCheckpoint(t *testing.T) {
	r := sampleRoute()

	cp, ok := r.Checkpoint(3)
	if !ok || cp.Place != "AEROPUERTO" {
		t.Fatalf("Checkpoint(3) = %+v, %v", cp, ok)
	}

	for _, order := range []int{0, -1, 4} {
		if _, ok := r.Checkpoint(order); ok {
			t.Errorf("Checkpoint(%d) should not be found", order)
		}
	}
}

func TestClampPoint(t *testing.T) {
	tests := []struct {
		point, total, want int
	}{
		{21, 45, 21},
		{0, 45, 1},
		{-7, 45, 1},
		{46, 45, 45},
		{math.MaxInt32, 50, 50},
		{5, 0, 1},
	}

	for _, tt := range tests {
		got := ClampPoint(tt.point, tt.total)
		if got != tt.want {
			t.Errorf("ClampPoint(%d, %d) = %d, want %d", tt.point, tt.total, got, tt.want)
		}
		if again := ClampPoint(got, tt.total); again != got {
			t.Errorf("ClampPoint not idempotent: %d -> %d", got, again)
		}
	}
}

func TestCoordinatesValidate(t *testing.T) {
	valid := []Coordinates{{0, 0}, {90, 180}, {-90, -180}, {-2.17, -79.92}}
	for _, c := range valid {
		if err := c.Validate(); err != nil {
			t.Errorf("Validate(%+v) = %v", c, err)
		}
	}

	invalid := []Coordinates{{91, 0}, {0, 180.2}, {math.NaN(), 0}, {0, math.NaN()}}
	for _, c := range invalid {
		if err := c.Validate(); !errors.Is(err, ErrInvalidCoordinates) {
			t.Errorf("Validate(%+v) = %v, want ErrInvalidCoordinates", c, err)
		}
	}

	if got := (Coordinates{Lat: 1, Lon: 2}).CoordsToList(); got[0] != 2 || got[1] != 1 {
		t.Fatalf("CoordsToList = %v, want [lon lat]", got)
	}
}

func TestPhaseValid(t *testing.T) {
	for _, p := range Phases {
		if !p.Valid() {
			t.Errorf("phase %q should be valid", p)
		}
	}
	if Phase("sea").Valid() {
		t.Fatal("unknown phase reported valid")
	}
}
