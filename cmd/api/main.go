package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/globopersona/marketing-dashboard/api/routes"
	"github.com/globopersona/marketing-dashboard/internal/config"
	"github.com/globopersona/marketing-dashboard/internal/handlers"
	"github.com/globopersona/marketing-dashboard/internal/repositories"
	"github.com/globopersona/marketing-dashboard/internal/repositories/localstore"
	"github.com/globopersona/marketing-dashboard/internal/services"
	"github.com/globopersona/marketing-dashboard/internal/store"
	"github.com/globopersona/marketing-dashboard/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the key-value store backing every collection
	var st store.Store
	if cfg.Store.InMemory {
		st = store.NewMemoryStore()
	} else {
		fileStore, err := store.NewFileStore(cfg.Store.DataDir)
		if err != nil {
			log.Fatalf("Failed to open store: %v", err)
		}
		st = fileStore
	}

	ids := utils.NewIDGenerator()

	// Initialize repositories
	var userRepo repositories.UserRepository = localstore.NewUserRepository(st)
	var sessionRepo repositories.SessionRepository = localstore.NewSessionRepository(st)
	var campaignRepo repositories.CampaignRepository = localstore.NewCampaignRepository(st)
	var contactRepo repositories.ContactRepository = localstore.NewContactRepository(st)
	var settingsRepo repositories.SettingsRepository = localstore.NewSettingsRepository(st)

	// Initialize services
	authService := services.NewAuthService(userRepo, sessionRepo, ids, cfg)
	campaignService := services.NewCampaignService(campaignRepo, ids)
	contactService := services.NewContactService(contactRepo, ids)
	settingsService := services.NewSettingsService(settingsRepo)
	dashboardService := services.NewDashboardService(campaignRepo, contactRepo)

	// Restore the persisted session, if any
	if user, err := authService.RestoreSession(context.Background()); err != nil {
		log.Fatalf("Failed to restore session: %v", err)
	} else if user != nil {
		log.Printf("Restored session for %s", user.Email)
	}

	// Initialize handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:      handlers.NewAuthHandler(authService),
		CampaignHandler:  handlers.NewCampaignHandler(campaignService),
		ContactHandler:   handlers.NewContactHandler(contactService),
		SettingsHandler:  handlers.NewSettingsHandler(settingsService),
		DashboardHandler: handlers.NewDashboardHandler(dashboardService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
