package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/clubhouse-backend/internal/seed"
	"github.com/angelmondragon/clubhouse-backend/pkg/config"
	"github.com/angelmondragon/clubhouse-backend/pkg/db"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
	"github.com/angelmondragon/clubhouse-backend/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	adminEmail := flag.String("admin-email", envOr("CLUBHOUSE_SEED_ADMIN_EMAIL", "admin@club.local"), "admin account email")
	adminPassword := flag.String("admin-password", envOr("CLUBHOUSE_SEED_ADMIN_PASSWORD", "Admin@123"), "admin account password")
	migrateFirst := flag.Bool("migrate", false, "create tables from the models before seeding")
	flag.Parse()

	cfg, err := config.Load()
	requireResource(context.Background(), logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)

	dbClient, err := db.New(ctx, cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	if *migrateFirst {
		requireResource(ctx, logg, "schema", migrate.AutoMigrateModels(dbClient))
	}

	err = seed.Run(ctx, dbClient, seed.Params{
		AdminEmail:    *adminEmail,
		AdminPassword: *adminPassword,
		Currency:      cfg.Payments.Currency,
		Password:      cfg.Password,
		Logger:        logg,
	})
	requireResource(ctx, logg, "seed", err)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
