package main

import (
	"context"
	"log"

	"algo-notes-be/internal/bootstrap"
	"algo-notes-be/internal/config"
	"algo-notes-be/internal/model"
	"algo-notes-be/internal/repository/mongodb"
	"algo-notes-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		migratePostgres(cfg)
	case config.DriverMongo:
		migrateMongo(cfg)
	case config.DriverMemory:
		log.Println("Memory store needs no migration.")
	default:
		log.Fatalf("Error: unknown DB_DRIVER %q", cfg.Database.Driver)
	}

	reportCount(cfg)
}

func reportCount(cfg *config.Config) {
	factory, closeStore, err := bootstrap.NewRepositoryFactory(cfg)
	if err != nil {
		log.Printf("Warn: Could not reopen store: %v", err)
		return
	}
	defer closeStore()

	ctx := context.Background()
	count, err := factory.NewUnitOfWork(ctx).NoteRepository().Count(ctx)
	if err != nil {
		log.Printf("Warn: Could not count notes: %v", err)
		return
	}
	log.Printf("Store holds %d topic(s).", count)
}

func migratePostgres(cfg *config.Config) {
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsProduction())
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Step 1: Setting up extensions...")
	// gen_random_uuid() lives in pgcrypto before Postgres 13.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
	}

	log.Println("Step 2: Running AutoMigrate...")
	if err := db.AutoMigrate(&model.Note{}); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("✅ Migration completed successfully!")
}

func migrateMongo(cfg *config.Config) {
	if cfg.Database.MongoURI == "" {
		log.Fatal("Error: MONGO_URI is not set")
	}

	client, err := database.NewMongoClient(cfg.Database.MongoURI, cfg.Database.MongoTimeout)
	if err != nil {
		log.Fatal("Error: Failed to create mongo client:", err)
	}
	defer client.Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.MongoTimeout)
	defer cancel()

	collection := database.OpenCollection(client, cfg.Database.MongoDatabase, model.NoteCollection)
	log.Println("Step 1: Ensuring indexes...")
	if err := mongodb.EnsureIndexes(ctx, collection); err != nil {
		log.Fatalf("Error: Failed to create indexes: %v", err)
	}

	log.Println("✅ Migration completed successfully!")
}
