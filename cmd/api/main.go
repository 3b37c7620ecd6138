package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"

	"github.com/eggmandi/ledger-api/internal/application/service"
	"github.com/eggmandi/ledger-api/internal/config"
	"github.com/eggmandi/ledger-api/internal/infrastructure/repository"
	"github.com/eggmandi/ledger-api/internal/presentation/http/handler"
	"github.com/eggmandi/ledger-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if len(cfg.Locations) == 0 {
		log.Fatal("No locations configured: set LOCATIONS to a comma-separated list")
	}

	// Initialize the ledger document store
	ledgerRepo, err := repository.NewFileLedgerRepository(afero.NewOsFs(), cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to initialize storage at %s: %v", cfg.Storage.Path, err)
	}

	// Initialize services
	ledgerService := service.NewLedgerService(ledgerRepo, cfg.Locations)
	revenueService := service.NewRevenueService(cfg.Locations)

	// Initialize handlers
	handlers := &routes.Handlers{
		Ledger:  handler.NewLedgerHandler(ledgerService),
		Revenue: handler.NewRevenueHandler(revenueService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

	port := cfg.App.Port
	if port == "" {
		port = "4000"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	log.Printf("Storage folder: %s", cfg.Storage.Path)
	log.Printf("Locations: %v", cfg.Locations)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
