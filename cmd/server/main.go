// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/hotacreatives/intake-backend/internal/config"
	"github.com/hotacreatives/intake-backend/internal/controller"
	"github.com/hotacreatives/intake-backend/internal/db"
	"github.com/hotacreatives/intake-backend/internal/handler"
	"github.com/hotacreatives/intake-backend/internal/mailer"
	"github.com/hotacreatives/intake-backend/internal/repository"
	"github.com/hotacreatives/intake-backend/internal/service"
	"github.com/hotacreatives/intake-backend/internal/storage"
)

func main() {
	// Load .env
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
	log.Println("✅ Connected to database")

	sheetRepo := &repository.SheetRepository{DB: conn}

	fileStore := &storage.DiskFileStore{
		Root:    cfg.FilesRoot,
		BaseURL: cfg.PublicBaseURL,
	}

	var sender mailer.Mailer
	if cfg.SMTPHost != "" {
		sender = &mailer.SMTPMailer{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.SMTPFrom,
		}
	} else {
		log.Println("⚠️ SMTP_HOST not set, emails will only be logged")
		sender = &mailer.LogMailer{}
	}

	intakeService := &service.IntakeService{
		Sheets:         sheetRepo,
		Files:          fileStore,
		Mailer:         sender,
		AdminEmail:     cfg.AdminEmail,
		WhatsAppNumber: cfg.WhatsAppNumber,
	}

	intakeController := &controller.IntakeController{
		IntakeService: intakeService,
	}

	intakeHandler := &handler.IntakeHandler{
		Service: intakeService,
	}

	r := chi.NewRouter()

	// Combined deployment: dispatch on formType
	r.Get("/", intakeController.Health)
	r.Post("/", intakeController.Submit)

	// Single-purpose deployments
	r.Get("/contact", intakeHandler.ContactHealth)
	r.Post("/contact", intakeHandler.HandleContact)
	r.Get("/audit", intakeHandler.AuditHealth)
	r.Post("/audit", intakeHandler.HandleAudit)

	// Stored attachments, public by link
	filesServer := http.StripPrefix("/files/", http.FileServer(http.Dir(cfg.FilesRoot)))
	r.Get("/files/*", filesServer.ServeHTTP)

	log.Println("🚀 Server running on", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, r))
}
