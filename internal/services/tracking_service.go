package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"shipment-tracking-service/internal/domain"
	"shipment-tracking-service/internal/platform/logging"
	"shipment-tracking-service/internal/platform/metrics"
	"shipment-tracking-service/internal/platform/obs"
	"shipment-tracking-service/internal/ports"
	"shipment-tracking-service/internal/projection"
	"shipment-tracking-service/internal/status"
)

// lookupLoadTimeout bounds a shared status table load, which outlives the
// request that started it.
const lookupLoadTimeout = 10 * time.Second

const lookupLoadKey = "status_tables"

// TrackingResult is everything a tracking screen needs for one inspection.
type TrackingResult struct {
	Inspection domain.Inspection         `json:"inspection"`
	Shipment   *domain.Shipment          `json:"shipment,omitempty"`
	Resolution status.Resolution         `json:"resolution"`
	View       domain.ProjectedRouteView `json:"view"`
}

// TrackingService loads records and status tables through ports, resolves
// the tracking point and projects the matching route. Missing routes and
// unknown statuses end up in the view; only infrastructure failures and
// unknown inspections are returned as errors.
type TrackingService struct {
	Records   ports.RecordRepository
	Lookups   ports.StatusLookupSource
	Projector *projection.Projector

	// Optional.
	Cache   ports.LookupCache
	Legacy  *status.LegacyStatusMap
	Metrics *metrics.Registry
	// Threshold is used when the shipment table defines no tracking points.
	Threshold int

	loads singleflight.Group
}

// TrackInspection loads the inspection, its shipment and the lookup tables
// concurrently and projects the inspection's route.
func (s *TrackingService) TrackInspection(
	ctx context.Context,
	inspectionID string,
	opts projection.Options,
) (_ TrackingResult, err error) {
	defer obs.Time(ctx, "tracking.TrackInspection")(&err)

	if s.Records == nil {
		return TrackingResult{}, errors.New("track inspection: record repository is nil")
	}

	var (
		insp     domain.Inspection
		shipment *domain.Shipment
		tables   domain.StatusTables
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		insp, err = s.Records.GetInspection(gctx, inspectionID)
		return err
	})
	g.Go(func() error {
		var err error
		shipment, err = s.Records.ShipmentForInspection(gctx, inspectionID)
		return err
	})
	g.Go(func() error {
		var err error
		tables, err = s.StatusLookups(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return TrackingResult{}, fmt.Errorf("track inspection %q: %w", inspectionID, err)
	}

	return s.track(insp, shipment, tables, opts), nil
}

// TrackRecord projects records supplied by the caller instead of loaded ones.
func (s *TrackingService) TrackRecord(
	ctx context.Context,
	insp domain.Inspection,
	shipment *domain.Shipment,
	opts projection.Options,
) (_ TrackingResult, err error) {
	defer obs.Time(ctx, "tracking.TrackRecord")(&err)

	tables, err := s.StatusLookups(ctx)
	if err != nil {
		return TrackingResult{}, fmt.Errorf("track record: %w", err)
	}

	return s.track(insp, shipment, tables, opts), nil
}

// ProjectRoute projects a catalog route at an explicit tracking point.
func (s *TrackingService) ProjectRoute(
	serviceType domain.ServiceType,
	cargoType domain.CargoType,
	point int,
	opts projection.Options,
) domain.ProjectedRouteView {
	view := s.Projector.ProjectKey(serviceType, cargoType, point, opts)
	s.Metrics.Projection(string(view.Status))
	return view
}

// StatusLookups returns both status tables, from the cache when possible.
// Concurrent misses share one load. A failing cache is logged and bypassed.
func (s *TrackingService) StatusLookups(ctx context.Context) (_ domain.StatusTables, err error) {
	defer obs.Time(ctx, "tracking.StatusLookups")(&err)

	if s.Cache != nil {
		tables, ok, err := s.Cache.Get(ctx)
		switch {
		case err != nil:
			s.Metrics.LookupCache("error")
			logging.L().Warnw("lookup cache read failed", "req_id", obs.RequestID(ctx), "err", err)
		case ok:
			s.Metrics.LookupCache("hit")
			return tables, nil
		default:
			s.Metrics.LookupCache("miss")
		}
	}

	return s.sharedLoad(ctx)
}

// RefreshStatusLookups drops the cached tables and reloads them from the
// source.
func (s *TrackingService) RefreshStatusLookups(ctx context.Context) (_ domain.StatusTables, err error) {
	defer obs.Time(ctx, "tracking.RefreshStatusLookups")(&err)

	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx); err != nil {
			logging.L().Warnw("lookup cache invalidate failed", "req_id", obs.RequestID(ctx), "err", err)
		}
	}
	// A load already in flight may predate the change being picked up.
	s.loads.Forget(lookupLoadKey)

	return s.sharedLoad(ctx)
}

// sharedLoad joins concurrent loads into one. The load is detached from
// the caller's cancellation so that one aborted request does not fail the
// others waiting on it; each caller still stops waiting when its own
// context ends.
func (s *TrackingService) sharedLoad(ctx context.Context) (domain.StatusTables, error) {
	ch := s.loads.DoChan(lookupLoadKey, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupLoadTimeout)
		defer cancel()
		return s.loadLookups(loadCtx)
	})

	select {
	case <-ctx.Done():
		return domain.StatusTables{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.StatusTables{}, res.Err
		}
		return res.Val.(domain.StatusTables), nil
	}
}

func (s *TrackingService) loadLookups(ctx context.Context) (domain.StatusTables, error) {
	if s.Lookups == nil {
		return domain.StatusTables{}, errors.New("load status lookups: source is nil")
	}

	var tables domain.StatusTables
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tables.Inspection, err = s.Lookups.InspectionStatuses(gctx)
		if err != nil {
			return fmt.Errorf("load inspection statuses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		tables.Shipment, err = s.Lookups.ShipmentStatuses(gctx)
		if err != nil {
			return fmt.Errorf("load shipment statuses: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.StatusTables{}, err
	}

	if s.Cache != nil {
		if err := s.Cache.Put(ctx, tables); err != nil {
			logging.L().Warnw("lookup cache write failed", "req_id", obs.RequestID(ctx), "err", err)
		}
	}

	return tables, nil
}

func (s *TrackingService) track(
	insp domain.Inspection,
	shipment *domain.Shipment,
	tables domain.StatusTables,
	opts projection.Options,
) TrackingResult {
	resolver := status.NewResolverFromTables(tables, s.Legacy, status.WithShipmentThreshold(s.Threshold))
	res := resolver.ResolveInspection(insp, shipment)
	s.Metrics.Resolution(string(res.Source))

	view := s.ProjectRoute(insp.ShippingServiceType, insp.CargoType, res.Point, opts)

	return TrackingResult{
		Inspection: insp,
		Shipment:   shipment,
		Resolution: res,
		View:       view,
	}
}
