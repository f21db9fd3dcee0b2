package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tabletop-events-api/internal/config"
	"tabletop-events-api/internal/database"
	"tabletop-events-api/internal/repository"
	"tabletop-events-api/internal/seed"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the config file")
	dryRun := flag.Bool("dry-run", false, "Seed a throwaway in-memory database instead of the configured one")
	flag.Parse()

	_ = godotenv.Load(".env.local")

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var db *gorm.DB
	if *dryRun {
		db, err = database.NewSQLiteMemory()
	} else {
		db, err = database.New(database.Config{
			Driver:          cfg.Database.Driver,
			DSN:             cfg.Database.GetDSN(),
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		})
	}
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	seeder := seed.NewSeeder(repository.NewGameRepository(db), repository.NewLocationRepository(db), logger)
	res, err := seeder.Run(ctx)
	if err != nil {
		logger.Fatal("Seed aborted", zap.Error(err))
	}

	out, _ := json.MarshalIndent(res, "", "  ")
	fmt.Println(string(out))
}
