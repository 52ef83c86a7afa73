package main

import (
	"log"
	"net/http"
	"time"

	"github.com/Lucifer06sai/saiflix/config"
	"github.com/Lucifer06sai/saiflix/handlers"
	"github.com/Lucifer06sai/saiflix/logger"
	"github.com/Lucifer06sai/saiflix/services"
	"github.com/Lucifer06sai/saiflix/store"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg := config.Load()
	logger.Init(cfg.Environment, cfg.Debug)

	logger.Info("Initializing Saiflix components...")

	// Seed the in-memory catalog and the admin account
	st := store.New()
	if err := st.Seed(cfg); err != nil {
		log.Fatal("Failed to seed store:", err)
	}

	auth := services.NewAuthService(st, cfg)
	api := handlers.NewAPI(st, auth, cfg)

	addr := ":" + cfg.ServerPort
	logger.Info("Saiflix is starting",
		"addr", addr,
		"environment", cfg.Environment,
		"debug", cfg.Debug)

	server := &http.Server{
		Addr:         addr,
		Handler:      api.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("FATAL: Server failed to start: %v", err)
	}
}
