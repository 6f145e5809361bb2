package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/inkpaste/inkpaste/config"
	"github.com/inkpaste/inkpaste/handlers"
	"github.com/inkpaste/inkpaste/services"
	"github.com/inkpaste/inkpaste/storage"
)

// Version/build info (set via -ldflags at build time)
var (
	Version    = "dev"
	BuildTime  = "unknown"
	CommitHash = "none"
)

func main() {
	log.Printf("inkpaste version: %s", Version)
	log.Printf("build time:      %s", BuildTime)
	log.Printf("commit hash:     %s", CommitHash)

	cfg := config.LoadConfig()
	cfg.Version = Version
	cfg.BuildTime = BuildTime
	cfg.CommitHash = CommitHash

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := storage.NewStore(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Failed to initialize %s storage: %v", cfg.StorageType, err)
	}
	log.Printf("Using %s storage", cfg.StorageType)

	router := setupRouter(store)

	runHTTPServer(router, cfg, store)
}

// setupRouter creates and configures the Gin router.
func setupRouter(store storage.PasteStore) *gin.Engine {
	pasteService := services.NewPasteService(store)

	pasteHandler := handlers.NewPasteHandler(pasteService)
	pageHandler := handlers.NewPageHandler()
	systemHandler := handlers.NewSystemHandler(store)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.SetHTMLTemplate(handlers.LoadTemplates())

	// Pages
	router.GET("/", pageHandler.Home)
	router.POST("/", pageHandler.Home)
	router.GET("/about", pageHandler.About)
	router.POST("/about", pageHandler.About)

	// Paste lifecycle
	router.GET("/create", pageHandler.CreateForm)
	router.POST("/create", pasteHandler.Create)
	router.GET("/:id", pasteHandler.View)
	router.POST("/:id", pasteHandler.Unlock)

	// System routes
	router.GET("/health", systemHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Global 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", nil)
	})

	return router
}

// runHTTPServer starts the HTTP server and shuts it down gracefully on
// SIGINT/SIGTERM.
func runHTTPServer(router *gin.Engine, cfg *config.Config, store storage.PasteStore) {
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Error closing storage: %v", err)
		}
	}()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting inkpaste server on port %d", cfg.Port)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	} else {
		log.Println("Server shutdown complete")
	}
}
