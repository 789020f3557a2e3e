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

// Postgres-backed implementation of the StatusLookupSource port.
type PostgresLookupRepository struct{ DB *sql.DB }

var _ ports.StatusLookupSource = (*PostgresLookupRepository)(nil)

func NewPostgresLookupRepository(db *sql.DB) *PostgresLookupRepository {
	return &PostgresLookupRepository{DB: db}
}

func (r *PostgresLookupRepository) InspectionStatuses(ctx context.Context) (_ []domain.InspectionStatus, err error) {
	defer obs.Time(ctx, "lookups.InspectionStatuses")(&err)

	if r.DB == nil {
		return nil, errors.New("postgres lookup repository: DB is nil")
	}

	query := `
	SELECT value, sort_order, is_optional
	FROM inspection_statuses
	ORDER BY sort_order, value;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inspection statuses: query: %w", err)
	}
	defer rows.Close()

	out := make([]domain.InspectionStatus, 0, 32)
	for rows.Next() {
		var st domain.InspectionStatus
		if err := rows.Scan(&st.Value, &st.Order, &st.IsOptional); err != nil {
			return nil, fmt.Errorf("list inspection statuses: scan row: %w", err)
		}
		out = append(out, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inspection statuses: row iteration: %w", err)
	}

	return out, nil
}

func (r *PostgresLookupRepository) ShipmentStatuses(ctx context.Context) (_ []domain.ShipmentStatus, err error) {
	defer obs.Time(ctx, "lookups.ShipmentStatuses")(&err)

	if r.DB == nil {
		return nil, errors.New("postgres lookup repository: DB is nil")
	}

	query := `
	SELECT value, tracking_point, label, is_optional
	FROM shipment_statuses
	ORDER BY tracking_point, value;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shipment statuses: query: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ShipmentStatus, 0, 64)
	for rows.Next() {
		var st domain.ShipmentStatus
		if err := rows.Scan(&st.Value, &st.TrackingPoint, &st.Label, &st.IsOptional); err != nil {
			return nil, fmt.Errorf("list shipment statuses: scan row: %w", err)
		}
		out = append(out, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shipment statuses: row iteration: %w", err)
	}

	return out, nil
}
