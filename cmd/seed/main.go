// Command seed populates the database with demo data.
package main

import (
	"flag"
	"log"

	"barterly/internal/config"
	"barterly/internal/database"
	"barterly/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numBarters := flag.Int("barters", 60, "Number of barters to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Printf("Target: %d users, %d barters, clean=%v", *numUsers, *numBarters, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumBarters:  *numBarters,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("All done. Every demo account logs in with password: %s", seed.DemoPassword)
}
