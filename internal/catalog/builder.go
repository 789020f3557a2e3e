package catalog

import "shipment-tracking-service/internal/domain"

// routeBuilder assigns orders by counting through the journey, so a table
// can never contain gaps or duplicates.
type routeBuilder struct {
	checkpoints []domain.Checkpoint
}

func (b *routeBuilder) add(phase domain.Phase, place, status string, at domain.Coordinates) *routeBuilder {
	b.checkpoints = append(b.checkpoints, domain.Checkpoint{
		Order:  len(b.checkpoints) + 1,
		Place:  place,
		Status: status,
		Coords: at,
		Phase:  phase,
	})
	return b
}

func (b *routeBuilder) optional(phase domain.Phase, place, status string, at domain.Coordinates) *routeBuilder {
	b.add(phase, place, status, at)
	b.checkpoints[len(b.checkpoints)-1].IsOptional = true
	return b
}

// vehicleProgress adds the fixed 0/50/75/100 percent sub-sequence of a
// vehicle moving from one facility to another.
func (b *routeBuilder) vehicleProgress(phase domain.Phase, place string, from, to domain.Coordinates) *routeBuilder {
	for _, step := range []struct {
		pct  int
		frac float64
	}{{0, 0}, {50, 0.5}, {75, 0.75}, {100, 1}} {
		b.add(phase, place, vehicleStatus(step.pct), along(from, to, step.frac))
	}
	return b
}

// customs adds the six customs steps shared by origin and destination:
// entry, wait, optional delay, approval, then a two-step handoff.
func (b *routeBuilder) customs(phase domain.Phase, place string, at domain.Coordinates, handoffWait, handoffDone string) *routeBuilder {
	b.add(phase, place, "Ingreso a inspección aduanera", at)
	b.add(phase, place, "En espera de inspección", at)
	b.optional(phase, place, "Retraso en inspección", at)
	b.add(phase, place, "Inspección aprobada", at)
	b.add(phase, place, handoffWait, at)
	b.add(phase, place, handoffDone, at)
	return b
}

func (b *routeBuilder) waypoints(points []waypoint) *routeBuilder {
	for _, w := range points {
		b.add(domain.PhaseTransit, w.place, w.status, w.at)
	}
	return b
}

func (b *routeBuilder) build(serviceType domain.ServiceType, cargoType domain.CargoType, origin, destination string) domain.RouteDefinition {
	return domain.RouteDefinition{
		ID:          domain.RouteKey(serviceType, cargoType),
		ServiceType: serviceType,
		CargoType:   cargoType,
		Origin:      origin,
		Destination: destination,
		TotalPoints: len(b.checkpoints),
		Checkpoints: b.checkpoints,
	}
}

type waypoint struct {
	place  string
	status string
	at     domain.Coordinates
}

func vehicleStatus(pct int) string {
	switch pct {
	case 0:
		return "Vehículo en camino (0%)"
	case 50:
		return "Vehículo en camino (50%)"
	case 75:
		return "Vehículo en camino (75%)"
	default:
		return "Vehículo en camino (100%)"
	}
}

// along interpolates linearly between two nearby points. Only used for
// short road legs where the straight line is good enough.
func along(from, to domain.Coordinates, frac float64) domain.Coordinates {
	return domain.Coordinates{
		Lat: round6(from.Lat + (to.Lat-from.Lat)*frac),
		Lon: round6(from.Lon + (to.Lon-from.Lon)*frac),
	}
}

func round6(v float64) float64 {
	const scale = 1e6
	if v < 0 {
		return -float64(int64(-v*scale+0.5)) / scale
	}
	return float64(int64(v*scale+0.5)) / scale
}

func latLon(lat, lon float64) domain.Coordinates {
	return domain.Coordinates{Lat: lat, Lon: lon}
}
