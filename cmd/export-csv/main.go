// Command export-csv writes the rating CSV to a file or stdout without
// going through the HTTP server. Useful for backups and cron jobs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/madangclub/mahjong-rating/internal/database"
	"github.com/madangclub/mahjong-rating/internal/logger"
	"github.com/madangclub/mahjong-rating/internal/services"
	"github.com/madangclub/mahjong-rating/pkg/config"
)

func main() {
	out := flag.String("o", "", "output file (defaults to stdout)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.New()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	svcs := services.NewServices(db.DB, logger.NewSimpleLogger())

	data, err := svcs.Export.ExportRatingCSV()
	if err != nil {
		log.Fatal("Failed to export:", err)
	}

	if *out == "" {
		os.Stdout.Write(data)
		return
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal("Failed to write file:", err)
	}
	fmt.Printf("wrote %d bytes to %s\n", len(data), *out)
}
