package main

import (
	"log"
	"soloq/pkg/config"
	"soloq/pkg/database"
	"soloq/scheduler/jobs"
)

// One-shot bulk load of the champion reference data.
// The scheduler runs the same sync daily, this binary exists for
// bootstrapping a fresh database before the first pipeline run.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		log.Fatal(err)
	}

	// Runs the migrations.
	rawDb, err := db.DB()
	if err != nil {
		log.Fatalf("Couldn't get raw db connection: %v", err)
	}

	if err := database.RunMigrations(rawDb, cfg.Database.Database); err != nil {
		log.Fatal(err)
	}

	if err := jobs.SyncChampions(cfg); err != nil {
		log.Fatalf("Champion sync failed: %v", err)
	}

	log.Println("Champion sync finished.")
}
