package ports

import (
	"context"
	"errors"

	"shipment-tracking-service/internal/domain"
)

// ErrNotFound is returned by repositories when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Port: a boundary for retrieving inspection and shipment records.
type RecordRepository interface {
	// Return the inspection with its line items. Wraps ErrNotFound when missing.
	GetInspection(ctx context.Context, id string) (domain.Inspection, error)
	// Return the shipment for an inspection, or nil when none exists yet.
	// The shipment named by Inspection.ShipmentID wins when it exists;
	// otherwise the most advanced shipment referencing the inspection
	// (highest tracking point, then lowest id) is returned.
	ShipmentForInspection(ctx context.Context, inspectionID string) (*domain.Shipment, error)
}
