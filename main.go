package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"gomandate/api"
	"gomandate/internal/config"
	"gomandate/internal/container"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	c, err := container.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup error: %v", err)
	}
	defer c.Close()

	server := api.NewServer(c.Evaluator, c.Decisions, c.Tracker)
	if err := server.ListenAndServe(api.Config{Port: cfg.Server.Port}); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
