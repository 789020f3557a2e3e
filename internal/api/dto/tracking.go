package dto

import (
	"shipment-tracking-service/internal/domain"
	"shipment-tracking-service/internal/status"
)

// ResolveRequest carries records owned by another system, for callers
// that want a projection without storing them here.
type ResolveRequest struct {
	Inspection domain.Inspection `json:"inspection"`
	Shipment   *domain.Shipment  `json:"shipment"`
}

type TrackingResponse struct {
	InspectionID string                    `json:"inspection_id,omitempty"`
	ShipmentID   string                    `json:"shipment_id,omitempty"`
	Resolution   status.Resolution         `json:"resolution"`
	View         domain.ProjectedRouteView `json:"view"`
}

type StatusLookupsResponse struct {
	InspectionStatuses []domain.InspectionStatus `json:"inspection_statuses"`
	ShipmentStatuses   []domain.ShipmentStatus   `json:"shipment_statuses"`
	ShipmentThreshold  int                       `json:"shipment_threshold"`
}
