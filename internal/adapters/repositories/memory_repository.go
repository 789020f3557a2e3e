package repositories

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"shipment-tracking-service/internal/domain"
	"shipment-tracking-service/internal/ports"
)

// MemoryRepository keeps records and lookup tables in process. It backs the
// server when no database is configured and stands in for Postgres in tests.
type MemoryRepository struct {
	mu          sync.RWMutex
	inspections map[string]domain.Inspection
	shipments   map[string]domain.Shipment
	tables      domain.StatusTables
}

var (
	_ ports.RecordRepository   = (*MemoryRepository)(nil)
	_ ports.StatusLookupSource = (*MemoryRepository)(nil)
)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		inspections: make(map[string]domain.Inspection),
		shipments:   make(map[string]domain.Shipment),
	}
}

// NewMemoryRepositoryFromSeed loads every record of a seed document.
func NewMemoryRepositoryFromSeed(seed Seed) (*MemoryRepository, error) {
	if err := seed.normalize(); err != nil {
		return nil, fmt.Errorf("memory repository: %w", err)
	}

	r := NewMemoryRepository()
	r.SetStatusTables(domain.StatusTables{Inspection: seed.InspectionStatuses, Shipment: seed.ShipmentStatuses})
	for _, insp := range seed.Inspections {
		r.PutInspection(insp)
	}
	for _, sh := range seed.Shipments {
		r.PutShipment(sh)
	}
	return r, nil
}

func (r *MemoryRepository) PutInspection(insp domain.Inspection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	insp.LineItems = slices.Clone(insp.LineItems)
	r.inspections[insp.ID] = insp
}

func (r *MemoryRepository) PutShipment(sh domain.Shipment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shipments[sh.ID] = sh
}

func (r *MemoryRepository) SetStatusTables(tables domain.StatusTables) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables = domain.StatusTables{
		Inspection: slices.Clone(tables.Inspection),
		Shipment:   slices.Clone(tables.Shipment),
	}
}

func (r *MemoryRepository) GetInspection(ctx context.Context, id string) (domain.Inspection, error) {
	if err := ctx.Err(); err != nil {
		return domain.Inspection{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	insp, ok := r.inspections[id]
	if !ok {
		return domain.Inspection{}, fmt.Errorf("get inspection %q: %w", id, ports.ErrNotFound)
	}
	insp.LineItems = slices.Clone(insp.LineItems)
	return insp, nil
}

// ShipmentForInspection prefers the shipment named on the inspection and
// otherwise picks the most advanced shipment linked to it.
func (r *MemoryRepository) ShipmentForInspection(ctx context.Context, inspectionID string) (*domain.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if insp, ok := r.inspections[inspectionID]; ok && insp.ShipmentID != nil {
		if sh, ok := r.shipments[*insp.ShipmentID]; ok {
			return &sh, nil
		}
	}

	var best *domain.Shipment
	for _, sh := range r.shipments {
		if sh.InspectionID != inspectionID {
			continue
		}
		if best == nil || sh.TrackingPoint > best.TrackingPoint ||
			(sh.TrackingPoint == best.TrackingPoint && sh.ID < best.ID) {
			s := sh
			best = &s
		}
	}
	return best, nil
}

func (r *MemoryRepository) InspectionStatuses(ctx context.Context) ([]domain.InspectionStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.tables.Inspection), nil
}

func (r *MemoryRepository) ShipmentStatuses(ctx context.Context) ([]domain.ShipmentStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.tables.Shipment), nil
}
