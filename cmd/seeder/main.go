// cmd/seeder/main.go
//
// Deploy-time initialization: creates the backing tables and writes
// both sheet headers once, so concurrent first submissions never race
// on header creation.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/hotacreatives/intake-backend/internal/config"
	"github.com/hotacreatives/intake-backend/internal/db"
	"github.com/hotacreatives/intake-backend/internal/repository"
	"github.com/hotacreatives/intake-backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer conn.Close()

	repo := &repository.SheetRepository{DB: conn}

	if err := repo.Migrate(); err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ Tables ready")

	if err := service.InitSheets(repo); err != nil {
		log.Fatalf("❌ sheet init failed: %v", err)
	}
	log.Println("✅ Sheets initialized with headers")
}
