package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"shipment-tracking-service/internal/api/dto"
	"shipment-tracking-service/internal/domain"
	"shipment-tracking-service/internal/platform/logging"
	"shipment-tracking-service/internal/platform/obs"
	"shipment-tracking-service/internal/ports"
	"shipment-tracking-service/internal/projection"
	"shipment-tracking-service/internal/services"
	"shipment-tracking-service/internal/status"
)

const maxResolveBody = 1 << 20

type TrackingHandler struct {
	Service *services.TrackingService
}

func (h *TrackingHandler) Inspection(w http.ResponseWriter, r *http.Request) {
	result, ok := h.trackInspection(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, trackingResponse(result))
}

// InspectionGeoJSON returns the inspection's projection as a GeoJSON
// FeatureCollection for map clients.
func (h *TrackingHandler) InspectionGeoJSON(w http.ResponseWriter, r *http.Request) {
	result, ok := h.trackInspection(w, r)
	if !ok {
		return
	}

	w.Header().Set("X-Route-Status", string(result.View.Status))
	writeBody(w, r, http.StatusOK, "application/geo+json", projection.FeatureCollection(result.View))
}

func (h *TrackingHandler) trackInspection(w http.ResponseWriter, r *http.Request) (services.TrackingResult, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "inspection id is required")
		return services.TrackingResult{}, false
	}

	showPending, ok := queryBool(r, "show_pending")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "show_pending must be a boolean")
		return services.TrackingResult{}, false
	}

	result, err := h.Service.TrackInspection(r.Context(), id, projection.Options{ShowPending: showPending})
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "inspection not found")
		return services.TrackingResult{}, false
	}
	if err != nil {
		logging.L().Errorw("track inspection failed", "req_id", obs.RequestID(r.Context()), "inspection_id", id, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return services.TrackingResult{}, false
	}

	return result, true
}

// Resolve projects records posted in the request body.
func (h *TrackingHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req dto.ResolveRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxResolveBody))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(string(req.Inspection.ShippingServiceType)) == "" {
		writeError(w, r, http.StatusBadRequest, "inspection.shipping_service_type is required")
		return
	}
	if strings.TrimSpace(string(req.Inspection.CargoType)) == "" {
		writeError(w, r, http.StatusBadRequest, "inspection.cargo_type is required")
		return
	}

	showPending, ok := queryBool(r, "show_pending")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "show_pending must be a boolean")
		return
	}

	result, err := h.Service.TrackRecord(r.Context(), req.Inspection, req.Shipment, projection.Options{ShowPending: showPending})
	if err != nil {
		logging.L().Errorw("resolve tracking failed", "req_id", obs.RequestID(r.Context()), "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, trackingResponse(result))
}

func (h *TrackingHandler) StatusLookups(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Service.StatusLookups(r.Context())
	if err != nil {
		logging.L().Errorw("load status lookups failed", "req_id", obs.RequestID(r.Context()), "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	h.writeLookups(w, r, tables)
}

// RefreshStatusLookups drops the cached tables and returns a fresh copy.
func (h *TrackingHandler) RefreshStatusLookups(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Service.RefreshStatusLookups(r.Context())
	if err != nil {
		logging.L().Errorw("refresh status lookups failed", "req_id", obs.RequestID(r.Context()), "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	logging.L().Infow("status lookups refreshed",
		"req_id", obs.RequestID(r.Context()),
		"inspection_statuses", len(tables.Inspection),
		"shipment_statuses", len(tables.Shipment))
	h.writeLookups(w, r, tables)
}

func (h *TrackingHandler) writeLookups(w http.ResponseWriter, r *http.Request, tables domain.StatusTables) {
	resolver := status.NewResolverFromTables(tables, nil, status.WithShipmentThreshold(h.Service.Threshold))
	writeJSON(w, r, http.StatusOK, dto.StatusLookupsResponse{
		InspectionStatuses: tables.Inspection,
		ShipmentStatuses:   tables.Shipment,
		ShipmentThreshold:  resolver.Threshold(),
	})
}

func trackingResponse(result services.TrackingResult) dto.TrackingResponse {
	res := dto.TrackingResponse{
		InspectionID: result.Inspection.ID,
		Resolution:   result.Resolution,
		View:         result.View,
	}
	if result.Shipment != nil {
		res.ShipmentID = result.Shipment.ID
	}
	return res
}
