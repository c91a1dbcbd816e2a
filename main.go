// @title University Degree Advisor API
// @version 1.0
// @description Backend for the university dashboard: enrollment insights and degree recommendation.

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"
	"path/filepath"

	"uni_advisor_backend/internal/app"
	"uni_advisor_backend/internal/config"
	"uni_advisor_backend/pkg/configwatcher"
	"uni_advisor_backend/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// Ranking options follow config edits without a restart.
	go configwatcher.WatchConfig(filepath.Join(*configDir, "config.yaml"), application.ApplyConfig)

	application.Run()
}
