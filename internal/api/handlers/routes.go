package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shipment-tracking-service/internal/api/dto"
	"shipment-tracking-service/internal/catalog"
	"shipment-tracking-service/internal/domain"
	"shipment-tracking-service/internal/projection"
	"shipment-tracking-service/internal/services"
)

// RouteHandler exposes the route catalog and ad-hoc projections.
type RouteHandler struct {
	Catalog  *catalog.Catalog
	Tracking *services.TrackingService
}

func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	routes := h.Catalog.Routes()

	res := dto.ListRoutesResponse{Routes: make([]dto.RouteSummary, 0, len(routes))}
	for _, rt := range routes {
		res.Routes = append(res.Routes, routeSummary(rt))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	serviceType, cargoType := routeParams(r)

	rt, ok := h.Catalog.Route(serviceType, cargoType)
	if !ok {
		writeJSON(w, r, http.StatusNotFound, dto.RouteNotFoundResponse{
			Error:       "route not found",
			ServiceType: string(serviceType),
			CargoType:   string(cargoType),
		})
		return
	}

	res := dto.RouteResponse{
		RouteSummary: routeSummary(rt),
		Checkpoints:  make([]dto.CheckpointResponse, 0, len(rt.Checkpoints)),
	}
	for _, cp := range rt.Checkpoints {
		res.Checkpoints = append(res.Checkpoints, dto.CheckpointResponse{
			Order:      cp.Order,
			Place:      cp.Place,
			Status:     cp.Status,
			Coords:     cp.Coords,
			Phase:      cp.Phase,
			PhaseLabel: catalog.PhaseLabel(cp.Phase),
			IsOptional: cp.IsOptional,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Projection renders a route at an explicit tracking point. A missing route
// is reported in the view status, not as an HTTP error.
func (h *RouteHandler) Projection(w http.ResponseWriter, r *http.Request) {
	serviceType, cargoType := routeParams(r)

	point, ok := queryInt(r, "point", 1)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "point must be an integer")
		return
	}
	showPending, ok := queryBool(r, "show_pending")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "show_pending must be a boolean")
		return
	}

	view := h.Tracking.ProjectRoute(serviceType, cargoType, point, projection.Options{ShowPending: showPending})
	writeJSON(w, r, http.StatusOK, view)
}

func routeParams(r *http.Request) (domain.ServiceType, domain.CargoType) {
	return domain.ServiceType(chi.URLParam(r, "serviceType")), domain.CargoType(chi.URLParam(r, "cargoType"))
}

func routeSummary(rt domain.RouteDefinition) dto.RouteSummary {
	s := dto.RouteSummary{
		ID:          rt.ID,
		ServiceType: rt.ServiceType,
		CargoType:   rt.CargoType,
		Origin:      rt.Origin,
		Destination: rt.Destination,
		TotalPoints: rt.TotalPoints,
		Phases:      []dto.PhaseSpan{},
	}

	for _, cp := range rt.Checkpoints {
		n := len(s.Phases)
		if n > 0 && s.Phases[n-1].Phase == cp.Phase {
			s.Phases[n-1].LastOrder = cp.Order
			continue
		}
		s.Phases = append(s.Phases, dto.PhaseSpan{
			Phase:      cp.Phase,
			Label:      catalog.PhaseLabel(cp.Phase),
			FirstOrder: cp.Order,
			LastOrder:  cp.Order,
		})
	}

	return s
}
