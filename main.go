package main

import (
	"cgpa_tracker/internal/app"
	"cgpa_tracker/internal/config"
	"cgpa_tracker/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
