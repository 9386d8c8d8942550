package worker

import (
	"log"
	"time"

	"tilesynth/internal/config"
	"tilesynth/internal/service/tiles"
)

// StartCacheSweeper starts the worker that drops renderer-cache entries
// left behind by superseded cache generations
func StartCacheSweeper() {
	tileService := tiles.GetTileService()

	ticker := time.NewTicker(config.CacheSweepInterval)
	go func() {
		for range ticker.C {
			if n := tileService.PruneStaleCache(); n > 0 {
				log.Printf("Cache sweeper dropped %d stale tile payloads", n)
			}
		}
	}()

	log.Println("Cache sweeper started with interval:", config.CacheSweepInterval)
}
