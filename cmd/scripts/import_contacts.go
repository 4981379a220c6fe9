package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/globopersona/marketing-dashboard/internal/config"
	"github.com/globopersona/marketing-dashboard/internal/repositories/localstore"
	"github.com/globopersona/marketing-dashboard/internal/services"
	"github.com/globopersona/marketing-dashboard/internal/store"
	"github.com/globopersona/marketing-dashboard/internal/utils"
)

// Imports contacts from a CSV file (name,email,phone,segment,status) into
// the local store used by the dashboard.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvPath := os.Args[1]

	dataDir := config.GetEnv("STORE_DATADIR", "./data")

	fileStore, err := store.NewFileStore(dataDir)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	contactRepo := localstore.NewContactRepository(fileStore)
	contactService := services.NewContactService(contactRepo, utils.NewIDGenerator())

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer f.Close()

	imported, err := contactService.ImportCSV(context.Background(), f)
	if err != nil {
		log.Fatalf("Import failed after %d contacts: %v", imported, err)
	}

	log.Printf("Imported %d contacts into %s", imported, dataDir)
}
