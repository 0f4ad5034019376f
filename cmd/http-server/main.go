package main

import (
	"log"

	"version3_server/config"
	"version3_server/internal/http"
)

func main() {
	// Load environment variables from .env file
	loaded, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to parse .env file: %v", err)
	}
	if !loaded {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	server := http.NewServer(cfg)

	log.Printf("Version 3 HTTP server (%s) starting on %s", cfg.Variant, cfg.Addr())
	log.Println("Available endpoints:")
	log.Println("  GET    /")

	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}
