package projection

import (
	"math"
	"testing"

	"shipment-tracking-service/internal/domain"
)

func TestCorrectLongitudesDateLine(t *testing.T) {
	got := CorrectLongitudes([]domain.Coordinates{
		{Lat: 51.8, Lon: 179.5},
		{Lat: 51.9, Lon: -179.8},
	})

	if got[0].Lon != 179.5 {
		t.Fatalf("first lon = %v, want 179.5", got[0].Lon)
	}
	if math.Abs(got[1].Lon-180.2) > 1e-9 {
		t.Fatalf("second lon = %v, want 180.2", got[1].Lon)
	}
	if got[1].Lat != 51.9 {
		t.Fatalf("latitude changed: %v", got[1].Lat)
	}
}

func TestCorrectLongitudesWestward(t *testing.T) {
	got := CorrectLongitudes([]domain.Coordinates{
		{Lon: -170},
		{Lon: 175},
		{Lon: 160},
	})
	want := []float64{-170, -185, -200}
	for i := range want {
		if math.Abs(got[i].Lon-want[i]) > 1e-9 {
			t.Fatalf("lon[%d] = %v, want %v", i, got[i].Lon, want[i])
		}
	}
}

func TestCorrectLongitudesLeavesInputAlone(t *testing.T) {
	in := []domain.Coordinates{{Lon: 179}, {Lon: -179}}
	_ = CorrectLongitudes(in)
	if in[1].Lon != -179 {
		t.Fatalf("input mutated: %v", in[1].Lon)
	}

	if out := CorrectLongitudes(nil); len(out) != 0 {
		t.Fatalf("nil input produced %d points", len(out))
	}
}

func TestCorrectLongitudesBounded(t *testing.T) {
	for _, route := range defaultCatalog(t).Routes() {
		coords := make([]domain.Coordinates, len(route.Checkpoints))
		for i, cp := range route.Checkpoints {
			coords[i] = cp.Coords
		}

		corrected := CorrectLongitudes(coords)
		for i := 1; i < len(corrected); i++ {
			if d := math.Abs(corrected[i].Lon - corrected[i-1].Lon); d > 180 {
				t.Errorf("%s: |Δlon| between %d and %d = %v", route.ID, i, i+1, d)
			}
		}
	}

	// Adversarial input, including jumps of exactly 180 and beyond.
	wild := []domain.Coordinates{{Lon: 0}, {Lon: 180}, {Lon: -180}, {Lon: 90}, {Lon: -90}, {Lon: 179.9}, {Lon: -179.9}}
	corrected := CorrectLongitudes(wild)
	for i := 1; i < len(corrected); i++ {
		if d := math.Abs(corrected[i].Lon - corrected[i-1].Lon); d > 180 {
			t.Errorf("wild: |Δlon| at %d = %v", i, d)
		}
	}
}
