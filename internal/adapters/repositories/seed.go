package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"shipment-tracking-service/internal/domain"
)

// Seed is the JSON document accepted by SeedFromJSON and the in-memory
// repository: both lookup tables plus sample inspections and shipments.
type Seed struct {
	InspectionStatuses []domain.InspectionStatus `json:"inspection_statuses"`
	ShipmentStatuses   []domain.ShipmentStatus   `json:"shipment_statuses"`
	Inspections        []domain.Inspection       `json:"inspections"`
	Shipments          []domain.Shipment         `json:"shipments"`
}

// Read and validate a seed file.
func LoadSeed(jsonPath string) (Seed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return Seed{}, fmt.Errorf("load seed: read %q: %w", jsonPath, err)
	}

	var seed Seed
	if err := json.Unmarshal(bytes, &seed); err != nil {
		return Seed{}, fmt.Errorf("load seed: parse json: %w", err)
	}

	if err := seed.normalize(); err != nil {
		return Seed{}, fmt.Errorf("load seed: %w", err)
	}

	return seed, nil
}

// normalize trims identifiers and status codes and rejects entries that
// cannot be stored.
func (s *Seed) normalize() error {
	for i := range s.InspectionStatuses {
		st := &s.InspectionStatuses[i]
		st.Value = strings.TrimSpace(st.Value)
		if st.Value == "" {
			return fmt.Errorf("inspection status at index %d: value cannot be empty", i+1)
		}
	}

	for i := range s.ShipmentStatuses {
		st := &s.ShipmentStatuses[i]
		st.Value = strings.TrimSpace(st.Value)
		if st.Value == "" {
			return fmt.Errorf("shipment status at index %d: value cannot be empty", i+1)
		}
	}

	inspections := make(map[string]struct{}, len(s.Inspections))
	for i := range s.Inspections {
		insp := &s.Inspections[i]
		insp.ID = strings.TrimSpace(insp.ID)
		if insp.ID == "" {
			return fmt.Errorf("inspection at index %d: id cannot be empty", i+1)
		}
		if _, dup := inspections[insp.ID]; dup {
			return fmt.Errorf("inspection %q: duplicate id", insp.ID)
		}
		inspections[insp.ID] = struct{}{}

		for j := range insp.LineItems {
			li := &insp.LineItems[j]
			li.ID = strings.TrimSpace(li.ID)
			if li.ID == "" {
				return fmt.Errorf("inspection %q line item at index %d: id cannot be empty", insp.ID, j+1)
			}
		}
	}

	for i := range s.Shipments {
		sh := &s.Shipments[i]
		sh.ID = strings.TrimSpace(sh.ID)
		if sh.ID == "" {
			return fmt.Errorf("shipment at index %d: id cannot be empty", i+1)
		}
		if _, ok := inspections[sh.InspectionID]; !ok {
			return fmt.Errorf("shipment %q: unknown inspection %q", sh.ID, sh.InspectionID)
		}
	}

	return nil
}
