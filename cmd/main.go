package main

import (
	"context"
	"log"

	"tilesynth/internal/api"
	"tilesynth/internal/config"
	redis_client "tilesynth/internal/redis"
	"tilesynth/internal/service/tiles"
	"tilesynth/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize cache; the service runs without Redis, tiles are then
	// regenerated on every request
	if _, err := redis_client.Init(cfg.RedisUrl); err != nil {
		log.Printf("Redis unavailable, tile source cache disabled: %v", err)
	}

	// Initialize and configure services
	initializeServices(cfg)

	// Start workers
	worker.StartAllWorkers()

	// Setup and run API server
	runAPIServer(cfg)
}

func initializeServices(cfg config.Config) *tiles.TileService {
	tileService := tiles.GetTileService()

	// Initial configuration pass, must not trigger cache invalidation
	if err := tileService.SetTotalFeatureCount(context.Background(), cfg.TotalFeatureCount); err != nil {
		log.Fatalf("Failed to configure tile service: %v", err)
	}

	return tileService
}

func runAPIServer(cfg config.Config) {
	// Initialize Gin router
	r := gin.Default()

	// Configure API routes
	config := map[string]string{
		"port":     cfg.Port,
		"redisUrl": cfg.RedisUrl,
	}
	api.SetupRouter(r, config)

	// Start the server
	r.Run(cfg.Port)
}
