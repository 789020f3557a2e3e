package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidRoute = errors.New("invalid route definition")

type ServiceType string

const (
	ServiceAerial   ServiceType = "aerial"
	ServiceMaritime ServiceType = "maritime"
)

// CargoType is open-ended; new cargo classes only need a catalog entry.
type CargoType string

const (
	CargoGeneral  CargoType = "general"
	CargoIMOMixta CargoType = "imo_mixta"
)

// RouteKey builds the catalog key for a (service, cargo) pair.
// No normalization is applied: lookups are literal.
func RouteKey(serviceType ServiceType, cargoType CargoType) string {
	return string(serviceType) + "_" + string(cargoType)
}

// Represents the fixed, ordered checkpoint sequence for one
// (service type, cargo type) combination. Checkpoints[i].Order == i+1.
type RouteDefinition struct {
	ID          string       `json:"id"`
	ServiceType ServiceType  `json:"service_type"`
	CargoType   CargoType    `json:"cargo_type"`
	Origin      string       `json:"origin"`
	Destination string       `json:"destination"`
	TotalPoints int          `json:"total_points"`
	Checkpoints []Checkpoint `json:"checkpoints"`
}

// Validate checks the structural invariants of a route definition.
// An empty checkpoint list is accepted: it is surfaced as "no data" at
// projection time rather than rejected at load time.
func (r RouteDefinition) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: id must not be empty", ErrInvalidRoute)
	}
	if want := RouteKey(r.ServiceType, r.CargoType); r.ID != want {
		return fmt.Errorf("%w: id %q does not match key %q", ErrInvalidRoute, r.ID, want)
	}
	if r.TotalPoints != len(r.Checkpoints) {
		return fmt.Errorf("%w: route %s total_points=%d but has %d checkpoints",
			ErrInvalidRoute, r.ID, r.TotalPoints, len(r.Checkpoints))
	}

	for i, cp := range r.Checkpoints {
		if cp.Order != i+1 {
			return fmt.Errorf("%w: route %s checkpoint #%d has order %d, want %d",
				ErrInvalidRoute, r.ID, i+1, cp.Order, i+1)
		}
		if !cp.Phase.Valid() {
			return fmt.Errorf("%w: route %s order %d has unknown phase %q",
				ErrInvalidRoute, r.ID, cp.Order, cp.Phase)
		}
		if err := cp.Coords.Validate(); err != nil {
			return fmt.Errorf("%w: route %s order %d: %w", ErrInvalidRoute, r.ID, cp.Order, err)
		}
	}

	return nil
}

// Checkpoint returns the checkpoint with the given order, if present.
func (r RouteDefinition) Checkpoint(order int) (Checkpoint, bool) {
	if order < 1 || order > len(r.Checkpoints) {
		return Checkpoint{}, false
	}
	cp := r.Checkpoints[order-1]
	if cp.Order != order {
		// Fall back to a scan for definitions that were never validated.
		for _, c := range r.Checkpoints {
			if c.Order == order {
				return c, true
			}
		}
		return Checkpoint{}, false
	}
	return cp, true
}

// ClampPoint coerces a tracking point into [1, total].
func ClampPoint(point, total int) int {
	if total < 1 {
		return 1
	}
	if point < 1 {
		return 1
	}
	if point > total {
		return total
	}
	return point
}
