package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"policyhub/internal/blobstore"
	"policyhub/internal/config"
	"policyhub/internal/db"
	"policyhub/internal/migrate"
	"policyhub/internal/model"
	"policyhub/internal/repository"
)

func main() {
	relabel := flag.Bool("relabel", false, "classify entries still marked unspecified by their original name")
	backfill := flag.Bool("backfill", false, "register blobs present in storage but missing from the registry")
	flag.Parse()

	if !*relabel && !*backfill {
		// Default to the full reconciliation.
		*relabel = true
		*backfill = true
	}

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.UploadedFile{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	fileRepo := repository.NewFileRepository(gormDB)
	blobs := blobstore.New(cfg.StorageURL, cfg.StorageKey, cfg.StorageBucket)
	migrator := migrate.New(fileRepo, blobs)

	ctx := context.Background()

	if *relabel {
		log.Println("Running relabel pass...")
		report, err := migrator.Relabel(ctx)
		if err != nil {
			log.Fatalf("relabel pass: %v", err)
		}
		log.Printf("Relabel done: %d updated, %d unresolved", report.Updated, len(report.Unresolved))
		for _, name := range report.Unresolved {
			log.Printf("  no department matched: %s", name)
		}
	}

	if *backfill {
		log.Println("Running backfill pass...")
		report, err := migrator.Backfill(ctx)
		if err != nil {
			log.Fatalf("backfill pass: %v", err)
		}
		log.Printf("Backfill done: %d added, %d already registered", report.Added, report.Skipped)
		for _, folder := range report.FailedFolders {
			log.Printf("  folder listing failed: %s", folder)
		}
	}
}
