package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"version3_server/config"
	"version3_server/internal/http"
	"version3_server/pkg/colors"
)

func main() {
	colors.PrintBanner()

	// Load environment variables from .env file
	loaded, err := config.Load()
	switch {
	case err != nil:
		colors.PrintError("Failed to parse .env file: %v", err)
		log.Fatalf("Configuration failed: %v", err)
	case loaded:
		colors.PrintSuccess("Environment configuration loaded from .env file")
	default:
		colors.PrintWarning("No .env file found, using system environment variables")
	}

	cfg, err := config.GetServerConfig()
	if err != nil {
		colors.PrintError("Invalid configuration: %v", err)
		log.Fatalf("Configuration failed: %v", err)
	}

	colors.PrintHeader("VERSION 3 SERVER INITIALIZATION")
	colors.PrintServer("🏷️", "Release variant %s", cfg.Variant)
	colors.PrintServer("🌐", "HTTP server configured for %s", cfg.Addr())
	colors.PrintSuccess("Debug mode disabled")

	colors.PrintSubHeader("Available Endpoints")
	colors.PrintEndpoint("GET", "/", "Release approval page")

	errorChan := make(chan error, 1)
	go func() {
		server := http.NewServer(cfg)
		colors.PrintInfo("Starting HTTP server...")
		errorChan <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errorChan:
		if err != nil {
			colors.PrintError("Server startup failed: %v", err)
			os.Exit(1)
		}
	case <-quit:
		colors.PrintShutdown()
	}
}
