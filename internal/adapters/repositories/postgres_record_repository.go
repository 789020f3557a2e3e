package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shipment-tracking-service/internal/domain"
	"shipment-tracking-service/internal/platform/obs"
	"shipment-tracking-service/internal/ports"
)

// Postgres-backed implementation of the RecordRepository port.
type PostgresRecordRepository struct{ DB *sql.DB }

var _ ports.RecordRepository = (*PostgresRecordRepository)(nil)

func NewPostgresRecordRepository(db *sql.DB) *PostgresRecordRepository {
	return &PostgresRecordRepository{DB: db}
}

// Return the inspection with its line items.
func (r *PostgresRecordRepository) GetInspection(ctx context.Context, id string) (_ domain.Inspection, err error) {
	defer obs.Time(ctx, "records.GetInspection")(&err)

	if r.DB == nil {
		return domain.Inspection{}, errors.New("postgres record repository: DB is nil")
	}

	query := `
	SELECT
		id,
		shipping_service_type,
		cargo_type,
		tracking_point_hint,
		shipment_id
	FROM inspections
	WHERE id = $1;
	`

	var (
		insp        domain.Inspection
		serviceType string
		cargoType   string
		hint        sql.NullInt64
		shipmentID  sql.NullString
	)
	err = r.DB.QueryRowContext(ctx, query, id).Scan(&insp.ID, &serviceType, &cargoType, &hint, &shipmentID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Inspection{}, fmt.Errorf("get inspection %q: %w", id, ports.ErrNotFound)
	}
	if err != nil {
		return domain.Inspection{}, fmt.Errorf("get inspection %q: query inspections table: %w", id, err)
	}

	insp.ShippingServiceType = domain.ServiceType(serviceType)
	insp.CargoType = domain.CargoType(cargoType)
	if hint.Valid {
		h := int(hint.Int64)
		insp.TrackingPointHint = &h
	}
	if shipmentID.Valid {
		s := shipmentID.String
		insp.ShipmentID = &s
	}

	items, err := r.lineItems(ctx, id)
	if err != nil {
		return domain.Inspection{}, err
	}
	insp.LineItems = items

	return insp, nil
}

func (r *PostgresRecordRepository) lineItems(ctx context.Context, inspectionID string) ([]domain.LineItem, error) {
	query := `
	SELECT id, status
	FROM inspection_line_items
	WHERE inspection_id = $1
	ORDER BY id;
	`
	rows, err := r.DB.QueryContext(ctx, query, inspectionID)
	if err != nil {
		return nil, fmt.Errorf("get inspection %q: query line items: %w", inspectionID, err)
	}
	defer rows.Close()

	items := make([]domain.LineItem, 0, 8)
	for rows.Next() {
		var li domain.LineItem
		if err := rows.Scan(&li.ID, &li.Status); err != nil {
			return nil, fmt.Errorf("get inspection %q: scan line item: %w", inspectionID, err)
		}
		items = append(items, li)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get inspection %q: line item iteration: %w", inspectionID, err)
	}

	return items, nil
}

// Return the shipment named by inspections.shipment_id when it exists,
// otherwise the most advanced shipment pointing at the inspection, or nil.
func (r *PostgresRecordRepository) ShipmentForInspection(ctx context.Context, inspectionID string) (_ *domain.Shipment, err error) {
	defer obs.Time(ctx, "records.ShipmentForInspection")(&err)

	if r.DB == nil {
		return nil, errors.New("postgres record repository: DB is nil")
	}

	query := `
	SELECT s.id, s.inspection_id, s.tracking_point, s.status
	FROM shipments s
	LEFT JOIN inspections i ON i.id = $1
	WHERE s.inspection_id = $1 OR s.id = i.shipment_id
	ORDER BY (s.id = i.shipment_id) IS TRUE DESC, s.tracking_point DESC, s.id
	LIMIT 1;
	`

	var sh domain.Shipment
	err = r.DB.QueryRowContext(ctx, query, inspectionID).Scan(&sh.ID, &sh.InspectionID, &sh.TrackingPoint, &sh.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("shipment for inspection %q: query shipments table: %w", inspectionID, err)
	}

	return &sh, nil
}
