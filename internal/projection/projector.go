package projection

import (
	"fmt"
	"math"

	"shipment-tracking-service/internal/catalog"
	"shipment-tracking-service/internal/domain"
)

type Options struct {
	// ShowPending adds the remaining polyline and pending markers.
	ShowPending bool
}

// MarkerStateFor classifies a checkpoint against the current position.
func MarkerStateFor(order, current int) domain.MarkerState {
	switch {
	case order < current:
		return domain.MarkerCompleted
	case order == current:
		return domain.MarkerCurrent
	default:
		return domain.MarkerPending
	}
}

// Progress returns round(current/total*100) after clamping current.
func Progress(current, total int) int {
	if total < 1 {
		return 0
	}
	current = domain.ClampPoint(current, total)
	return int(math.Round(float64(current) / float64(total) * 100))
}

// Project partitions a route around a tracking point and prepares the
// corrected coordinate lists a map needs. Out-of-range points are clamped;
// a route without checkpoints yields an empty_route view.
func Project(route domain.RouteDefinition, point int, opts Options) domain.ProjectedRouteView {
	view := domain.ProjectedRouteView{
		Status:      domain.ViewOK,
		RouteID:     route.ID,
		ServiceType: route.ServiceType,
		CargoType:   route.CargoType,
		Origin:      route.Origin,
		Destination: route.Destination,
		Completed:   []domain.ProjectedCheckpoint{},
		Pending:     []domain.ProjectedCheckpoint{},
		Traced:      []domain.ProjectedCheckpoint{},
	}

	if len(route.Checkpoints) == 0 {
		view.Status = domain.ViewEmptyRoute
		view.Message = "no tracking data available"
		view.Viewport = domain.Viewport{Empty: true}
		return view
	}

	total := route.TotalPoints
	if total < 1 {
		total = len(route.Checkpoints)
	}
	current := domain.ClampPoint(point, total)

	view.TotalPoints = total
	view.CurrentPosition = current
	view.ProgressPercent = Progress(current, total)

	// Orders are contiguous, so walking the slice visits them in order.
	all := make([]domain.ProjectedCheckpoint, 0, len(route.Checkpoints))
	currentIdx := -1
	for _, cp := range route.Checkpoints {
		pc := domain.ProjectedCheckpoint{
			Checkpoint: cp,
			State:      MarkerStateFor(cp.Order, current),
			Corrected:  cp.Coords,
		}
		if pc.State == domain.MarkerCurrent {
			currentIdx = len(all)
		}
		all = append(all, pc)
	}

	traced := make([]domain.ProjectedCheckpoint, 0, len(all))
	remaining := make([]domain.ProjectedCheckpoint, 0, len(all))
	for _, pc := range all {
		switch pc.State {
		case domain.MarkerCompleted:
			traced = append(traced, pc)
		case domain.MarkerCurrent:
			traced = append(traced, pc)
			remaining = append(remaining, pc)
		default:
			remaining = append(remaining, pc)
		}
	}

	view.Traced = correctCheckpoints(traced)
	remaining = correctCheckpoints(remaining)
	if len(view.Traced) > 0 {
		remaining = alignTo(remaining, view.Traced[len(view.Traced)-1].Corrected.Lon)
	}

	for _, pc := range view.Traced {
		if pc.State == domain.MarkerCurrent {
			cur := pc
			view.Current = &cur
			continue
		}
		view.Completed = append(view.Completed, pc)
	}
	for _, pc := range remaining {
		if pc.State == domain.MarkerPending {
			view.Pending = append(view.Pending, pc)
		}
	}
	if opts.ShowPending {
		view.Remaining = remaining
	}

	// The viewport frames exactly the coordinates a renderer will draw.
	coords := make([]domain.Coordinates, 0, len(view.Traced)+len(view.Remaining))
	for _, pc := range view.Traced {
		coords = append(coords, pc.Corrected)
	}
	for _, pc := range view.Remaining {
		coords = append(coords, pc.Corrected)
	}
	view.Viewport = FitViewport(coords)

	if currentIdx < 0 {
		view.Message = fmt.Sprintf("no checkpoint with order %d", current)
	}

	return view
}

// Projector resolves routes from a catalog before projecting them.
type Projector struct {
	catalog *catalog.Catalog
}

func NewProjector(c *catalog.Catalog) *Projector {
	return &Projector{catalog: c}
}

// ProjectKey projects the route for (serviceType, cargoType). A missing
// route is reported through a route_not_found view, never an error.
func (p *Projector) ProjectKey(
	serviceType domain.ServiceType,
	cargoType domain.CargoType,
	point int,
	opts Options,
) domain.ProjectedRouteView {
	route, ok := p.catalog.Route(serviceType, cargoType)
	if !ok {
		return NotFoundView(serviceType, cargoType)
	}
	return Project(route, point, opts)
}

// NotFoundView is the renderable result for a missing route. The message
// carries the requested parameters for debugging.
func NotFoundView(serviceType domain.ServiceType, cargoType domain.CargoType) domain.ProjectedRouteView {
	return domain.ProjectedRouteView{
		Status:      domain.ViewRouteNotFound,
		Message:     fmt.Sprintf("route not found: service_type=%q cargo_type=%q", serviceType, cargoType),
		RouteID:     domain.RouteKey(serviceType, cargoType),
		ServiceType: serviceType,
		CargoType:   cargoType,
		Completed:   []domain.ProjectedCheckpoint{},
		Pending:     []domain.ProjectedCheckpoint{},
		Traced:      []domain.ProjectedCheckpoint{},
		Viewport:    domain.Viewport{Empty: true},
	}
}
