package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"shipment-tracking-service/internal/adapters/repositories"
	"shipment-tracking-service/internal/catalog"
	"shipment-tracking-service/internal/config"
	"shipment-tracking-service/internal/platform/db"
	"shipment-tracking-service/internal/platform/logging"
)

func main() {
	schemaOnly := flag.Bool("schema-only", false, "create tables without seeding")
	seedPath := flag.String("seed", "", "seed file (defaults to SEED_PATH)")
	checkRoutes := flag.String("check-routes", "", "validate a YAML route file against the built-in catalog and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logging.Sync() }()
	logger := logging.L()

	if *checkRoutes != "" {
		if err := checkRouteFile(*checkRoutes); err != nil {
			logger.Errorw("route file rejected", "path", *checkRoutes, "err", err)
			os.Exit(1)
		}
		logger.Infow("route file ok", "path", *checkRoutes)
		return
	}

	if cfg.DatabaseURL == "" {
		logger.Fatalw("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatalw("open database", "err", err)
	}
	defer conn.Close()

	path := cfg.SeedPath
	if *seedPath != "" {
		path = *seedPath
	}
	if err := initAndSeed(ctx, conn, path, *schemaOnly); err != nil {
		logger.Fatalw("init and seed", "err", err)
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string, schemaOnly bool) error {
	logger := logging.L()

	logger.Infow("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	logger.Infow("schema ready")

	if schemaOnly {
		return nil
	}

	logger.Infow("seeding database", "seed_path", seedPath)
	if err := repositories.SeedFromJSON(ctx, conn, seedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	logger.Infow("seeding complete")

	return nil
}

func checkRouteFile(path string) error {
	routes, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}

	base, err := catalog.Default()
	if err != nil {
		return err
	}

	merged, err := catalog.WithOverlay(base, routes...)
	if err != nil {
		return err
	}

	for _, r := range routes {
		logging.L().Infow("route", "id", r.ID, "total_points", r.TotalPoints)
	}
	logging.L().Infow("merged catalog", "routes", merged.Keys())
	return nil
}
