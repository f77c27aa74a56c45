package main

import (
	"github.com/DADGADD/Venus/internal/config"
	"github.com/DADGADD/Venus/internal/logging"
	"github.com/DADGADD/Venus/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid venus configuration", err, logging.Fields{
			"config_path": path,
			"hint":        "create a venus_config.json with a 'corporation_names' array and optional keys: server.address, player_colors, turn_delay_ms",
		})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
