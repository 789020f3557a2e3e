package ports

import (
	"context"

	"shipment-tracking-service/internal/domain"
)

// Contract for retrieving the status → tracking point lookup tables.
type StatusLookupSource interface {
	InspectionStatuses(ctx context.Context) ([]domain.InspectionStatus, error)
	ShipmentStatuses(ctx context.Context) ([]domain.ShipmentStatus, error)
}
