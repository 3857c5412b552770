package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/rafflewise/draw-engine/internal/config"
	"github.com/rafflewise/draw-engine/internal/events"
	"github.com/rafflewise/draw-engine/internal/metrics"
	mongorepo "github.com/rafflewise/draw-engine/internal/repositories/mongodb"
	"github.com/rafflewise/draw-engine/internal/services"
	"github.com/rafflewise/draw-engine/internal/utils"
	"github.com/rafflewise/draw-engine/pkg/mongodb"
)

// Imports participant entries from a CSV file straight into MongoDB.
// Usage: import_csv <file.csv>
func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get MongoDB connection details from environment
	mongoURI := config.GetEnv("MONGODB_URI", "mongodb://localhost:27017")
	dbName := config.GetEnv("MONGODB_DATABASE", "draw-engine")

	// Get CSV file path from command line arguments
	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvFilePath := os.Args[1]

	// Connect to MongoDB
	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(dbName)

	// Open and parse the CSV file
	file, err := os.Open(csvFilePath)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	result, err := utils.ParseEntriesCSV(file)
	if err != nil {
		log.Fatalf("Failed to parse CSV file: %v", err)
	}
	for _, rowErr := range result.Errors {
		log.Printf("Warning: %s", rowErr)
	}

	// Import through the entry service so codes are normalized and
	// existing entries are refreshed rather than duplicated
	entryRepo := mongorepo.NewEntryRepository(db)
	exclusionRepo := mongorepo.NewExclusionRepository(db)
	auditService := services.NewAuditService(mongorepo.NewAuditRepository(db))
	entryService := services.NewEntryService(entryRepo, exclusionRepo, auditService, events.NoopPublisher{}, metrics.New())

	created, updated, err := entryService.ImportEntries(context.Background(), result.Entries)
	if err != nil {
		log.Fatalf("Failed to import entries: %v", err)
	}

	log.Printf("Import complete: %d rows read, %d created, %d updated, %d rejected",
		result.TotalRows, created, updated, len(result.Errors))
}
