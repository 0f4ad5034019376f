package http

import (
	"fmt"
	"net/http"

	"version3_server/config"
	"version3_server/pkg/colors"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.ServerConfig
}

// NewServer creates a new HTTP server instance
func NewServer(cfg *config.ServerConfig) *Server {
	// Debug mode stays off no matter what GIN_MODE says
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Only add logger middleware if LOG_HTTP is set to true
	if cfg.LogHTTP {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery())

	SetupRoutes(router, cfg.Variant)

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Handler returns the underlying router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	addr := s.cfg.Addr()
	colors.PrintServer("🌐", "HTTP server (%s) starting on %s", s.cfg.Variant, addr)

	server := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return nil
}
