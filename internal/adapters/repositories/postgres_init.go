package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createInspectionsQuery := `
	CREATE TABLE IF NOT EXISTS inspections (
		id TEXT PRIMARY KEY,
		shipping_service_type TEXT NOT NULL,
		cargo_type TEXT NOT NULL,
		tracking_point_hint INTEGER,
		shipment_id TEXT
	);
	`

	createLineItemsQuery := `
	CREATE TABLE IF NOT EXISTS inspection_line_items (
		id TEXT PRIMARY KEY,
		inspection_id TEXT NOT NULL REFERENCES inspections(id) ON DELETE CASCADE,
		status TEXT NOT NULL
	);
	`

	createShipmentsQuery := `
	CREATE TABLE IF NOT EXISTS shipments (
		id TEXT PRIMARY KEY,
		inspection_id TEXT NOT NULL REFERENCES inspections(id) ON DELETE CASCADE,
		tracking_point INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT ''
	);
	`

	createInspectionStatusesQuery := `
	CREATE TABLE IF NOT EXISTS inspection_statuses (
		value TEXT PRIMARY KEY,
		sort_order INTEGER NOT NULL,
		is_optional BOOLEAN NOT NULL DEFAULT FALSE
	);
	`

	createShipmentStatusesQuery := `
	CREATE TABLE IF NOT EXISTS shipment_statuses (
		value TEXT PRIMARY KEY,
		tracking_point INTEGER NOT NULL,
		label TEXT NOT NULL DEFAULT '',
		is_optional BOOLEAN NOT NULL DEFAULT FALSE
	);
	`

	createIndexQueries := `
	CREATE INDEX IF NOT EXISTS idx_inspection_line_items_inspection
	ON inspection_line_items(inspection_id);
	CREATE INDEX IF NOT EXISTS idx_shipments_inspection
	ON shipments(inspection_id);
	`

	statements := []string{
		createInspectionsQuery,
		createLineItemsQuery,
		createShipmentsQuery,
		createInspectionStatusesQuery,
		createShipmentStatusesQuery,
		createIndexQueries,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database from a JSON seed file. Existing rows with the
// same keys are overwritten.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	if db == nil {
		return errors.New("seed: DB is nil")
	}

	seed, err := LoadSeed(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, st := range seed.InspectionStatuses {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO inspection_statuses (value, sort_order, is_optional)
		VALUES ($1, $2, $3)
		ON CONFLICT (value) DO UPDATE
		SET sort_order = EXCLUDED.sort_order,
			is_optional = EXCLUDED.is_optional;
		`, st.Value, st.Order, st.IsOptional)
		if err != nil {
			return fmt.Errorf("seed: insert inspection status %q: %w", st.Value, err)
		}
	}

	for _, st := range seed.ShipmentStatuses {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO shipment_statuses (value, tracking_point, label, is_optional)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (value) DO UPDATE
		SET tracking_point = EXCLUDED.tracking_point,
			label = EXCLUDED.label,
			is_optional = EXCLUDED.is_optional;
		`, st.Value, st.TrackingPoint, st.Label, st.IsOptional)
		if err != nil {
			return fmt.Errorf("seed: insert shipment status %q: %w", st.Value, err)
		}
	}

	for _, insp := range seed.Inspections {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO inspections (id, shipping_service_type, cargo_type, tracking_point_hint, shipment_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET shipping_service_type = EXCLUDED.shipping_service_type,
			cargo_type = EXCLUDED.cargo_type,
			tracking_point_hint = EXCLUDED.tracking_point_hint,
			shipment_id = EXCLUDED.shipment_id;
		`, insp.ID, string(insp.ShippingServiceType), string(insp.CargoType), insp.TrackingPointHint, insp.ShipmentID)
		if err != nil {
			return fmt.Errorf("seed: insert inspection %q: %w", insp.ID, err)
		}

		for _, li := range insp.LineItems {
			_, err := tx.ExecContext(ctx, `
			INSERT INTO inspection_line_items (id, inspection_id, status)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE
			SET inspection_id = EXCLUDED.inspection_id,
				status = EXCLUDED.status;
			`, li.ID, insp.ID, li.Status)
			if err != nil {
				return fmt.Errorf("seed: insert line item %q: %w", li.ID, err)
			}
		}
	}

	for _, sh := range seed.Shipments {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO shipments (id, inspection_id, tracking_point, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET inspection_id = EXCLUDED.inspection_id,
			tracking_point = EXCLUDED.tracking_point,
			status = EXCLUDED.status;
		`, sh.ID, sh.InspectionID, sh.TrackingPoint, sh.Status)
		if err != nil {
			return fmt.Errorf("seed: insert shipment %q: %w", sh.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}
