package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipment-tracking-service/internal/adapters/cache"
	"shipment-tracking-service/internal/adapters/remote"
	"shipment-tracking-service/internal/adapters/repositories"
	"shipment-tracking-service/internal/api"
	"shipment-tracking-service/internal/catalog"
	"shipment-tracking-service/internal/config"
	"shipment-tracking-service/internal/platform/db"
	"shipment-tracking-service/internal/platform/logging"
	"shipment-tracking-service/internal/platform/metrics"
	"shipment-tracking-service/internal/ports"
	"shipment-tracking-service/internal/projection"
	"shipment-tracking-service/internal/services"
	"shipment-tracking-service/internal/status"
)

// main is the application composition root.
// It wires concrete adapters (Postgres or in-memory records, Redis or
// in-process lookup cache) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logging.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.L().Fatalw("server stopped", "err", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	logger := logging.L()

	cat, err := loadCatalog(cfg.RouteCatalogPath)
	if err != nil {
		return err
	}
	logger.Infow("route catalog loaded", "routes", cat.Keys(), "overlay", cfg.RouteCatalogPath)

	records, lookups, closeRecords, err := openRecords(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRecords()

	if cfg.StatusLookupURL != "" {
		src, err := remote.NewHTTPLookupSource(cfg.StatusLookupURL, cfg.StatusLookupAPIKey)
		if err != nil {
			return err
		}
		lookups = src
		logger.Infow("using remote status lookups", "url", cfg.StatusLookupURL)
	}

	lookupCache, closeCache, err := openLookupCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	reg := metrics.New()
	tracking := &services.TrackingService{
		Records:   records,
		Lookups:   lookups,
		Projector: projection.NewProjector(cat),
		Cache:     lookupCache,
		Legacy:    status.DefaultLegacyMap(),
		Metrics:   reg,
		Threshold: cfg.ShipmentPhaseThreshold,
	}

	router := api.NewRouter(api.Deps{
		Catalog:        cat,
		Tracking:       tracking,
		Metrics:        reg,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		LookupRefresh:  cfg.LookupRefresh,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("server listening", "addr", srv.Addr, "env", cfg.AppEnv)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func loadCatalog(overlayPath string) (*catalog.Catalog, error) {
	base, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if overlayPath == "" {
		return base, nil
	}

	extra, err := catalog.LoadFile(overlayPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog.WithOverlay(base, extra...)
}

// openRecords uses Postgres when DATABASE_URL is set and otherwise serves
// the seed file from memory.
func openRecords(ctx context.Context, cfg config.Config) (ports.RecordRepository, ports.StatusLookupSource, func(), error) {
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		logging.L().Infow("using postgres records")
		closeFn := func() { _ = conn.Close() }
		return repositories.NewPostgresRecordRepository(conn), repositories.NewPostgresLookupRepository(conn), closeFn, nil
	}

	repo := repositories.NewMemoryRepository()
	seed, err := repositories.LoadSeed(cfg.SeedPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logging.L().Warnw("no DATABASE_URL and no seed file; serving empty records", "seed_path", cfg.SeedPath)
	case err != nil:
		return nil, nil, nil, err
	default:
		if repo, err = repositories.NewMemoryRepositoryFromSeed(seed); err != nil {
			return nil, nil, nil, err
		}
		logging.L().Infow("using in-memory records", "seed_path", cfg.SeedPath,
			"inspections", len(seed.Inspections), "shipments", len(seed.Shipments))
	}

	return repo, repo, func() {}, nil
}

func openLookupCache(ctx context.Context, cfg config.Config) (ports.LookupCache, func(), error) {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryLookupCache(cfg.LookupCacheTTL), func() {}, nil
	}

	client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, nil, err
	}
	logging.L().Infow("using redis lookup cache", "addr", cfg.RedisAddr, "ttl", cfg.LookupCacheTTL.String())
	return cache.NewRedisLookupCache(client, cfg.LookupCacheTTL), func() { _ = client.Close() }, nil
}
