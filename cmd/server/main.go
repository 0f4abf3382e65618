package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vitrineweb/vitrine-backend/config"
	"github.com/vitrineweb/vitrine-backend/internal/app/controller"
	"github.com/vitrineweb/vitrine-backend/internal/app/repository"
	"github.com/vitrineweb/vitrine-backend/internal/app/service"
	"github.com/vitrineweb/vitrine-backend/internal/router"
	"github.com/vitrineweb/vitrine-backend/internal/scheduler"
	"github.com/vitrineweb/vitrine-backend/internal/sheet"
	"github.com/vitrineweb/vitrine-backend/pkg/catalog/ifood"
	"github.com/vitrineweb/vitrine-backend/pkg/logger"
	"github.com/vitrineweb/vitrine-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Vitrine Backend Server", map[string]interface{}{
		"environment":   cfg.Server.Environment,
		"port":          cfg.Server.Port,
		"log_level":     logLevel,
		"ifood_enabled": cfg.IFood.Enabled,
	})

	// Initialize Redis (session cart storage)
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to initialize Redis", err)
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
	}()

	// Data sources
	fetcher := sheet.NewFetcher(cfg.Sheet.BaseURL, nil, nil)

	catalogClient, err := ifood.NewClient(ifood.Config{
		Enabled:      cfg.IFood.Enabled,
		ClientID:     cfg.IFood.ClientID,
		ClientSecret: cfg.IFood.ClientSecret,
		MerchantID:   cfg.IFood.MerchantID,
		BaseURL:      cfg.IFood.BaseURL,
		TokenTTL:     cfg.IFood.TokenTTL,
		CatalogTTL:   cfg.IFood.CatalogTTL,
		CategoryTTL:  cfg.IFood.CategoryTTL,
		ItemsTTL:     cfg.IFood.ItemsTTL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize catalog client", err)
	}

	// Initialize repositories
	cartRepo := repository.NewCartRepository(redis.GetClient(), cfg.Cart.TTL)

	// Initialize services
	storeService := service.NewStoreService(fetcher, catalogClient)
	cartService := service.NewCartService(cartRepo)

	// Initialize controllers
	storeController := controller.NewStoreController(storeService)
	catalogController := controller.NewCatalogController(catalogClient)
	cartController := controller.NewCartController(cartService)

	// Cache janitor
	janitor := scheduler.NewCacheJanitor(catalogClient)
	if err := janitor.Start(); err != nil {
		logger.Warn("Cache janitor not running", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer janitor.Stop()

	// Setup router
	r := router.NewRouter(storeController, catalogController, cartController, cfg)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
