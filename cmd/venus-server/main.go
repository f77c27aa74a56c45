package main

import (
	"os"

	"github.com/DADGADD/Venus/internal/api"
	"github.com/DADGADD/Venus/internal/constants"
	"github.com/DADGADD/Venus/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; real deployments set env vars.
	_ = godotenv.Load()

	// Path may be provided via VENUS_CONFIG or defaults to
	// ./venus_config.json in the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./venus_config.json"
	}
	cfg := loadConfigOrExit(configPath)

	// Allow the DB path to be configured via VENUS_DB. Default to a
	// data/ directory inside the module for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/venus.db"
	}
	repo := createRepositoryOrExit(dbPath)

	hub := api.NewHub()
	handler := api.NewSessionHandler(repo, cfg, hub)

	// Background scanner: resolves vacation skips, exhausted-action skips
	// and AI turns once their pacing delay elapses.
	workerID := uuid.NewString()
	startAutoTurnScanner(repo, hub, cfg.TurnDelay, workerID)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)

		apiRoutes.POST(constants.RouteSessions, handler.CreateSession)
		apiRoutes.GET(constants.RouteSessionByCode, handler.GetSession)
		apiRoutes.POST(constants.RouteSessionAction, handler.InvokeAction)
		apiRoutes.POST(constants.RouteSessionSkip, handler.SkipTurn)
		apiRoutes.POST(constants.RouteSessionEnd, handler.EndSession)
		apiRoutes.GET(constants.RouteSessionStream, handler.StreamSession)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr, constants.LogFieldWorker: workerID})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
