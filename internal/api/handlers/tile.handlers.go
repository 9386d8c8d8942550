package routes

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"tilesynth/internal/service/tiles"
)

// SetupTileHandlers registers the tile endpoints
func SetupTileHandlers(router *gin.RouterGroup) {
	tileGroup := router.Group("/tiles")

	tileGroup.GET("/:z/:x/:y", GetTile)
}

// GetTile handles one tile request
func GetTile(c *gin.Context) {
	z, errZ := parseTileCoord(c.Param("z"))
	x, errX := parseTileCoord(c.Param("x"))
	y, errY := parseTileCoord(c.Param("y"))
	if errZ != nil || errX != nil || errY != nil {
		c.JSON(400, gin.H{
			"status": "error",
			"error":  "tile coordinates must be non-negative integers",
		})
		return
	}

	tileService := tiles.GetTileService()
	tile, err := tileService.LoadTile(c.Request.Context(), z, x, y)
	if err != nil {
		log.Printf("Failed to load tile %d/%d/%d: %v", z, x, y, err)
		c.JSON(500, gin.H{
			"status": "error",
			"error":  err.Error(),
		})
		return
	}

	c.Header("X-Cache-Generation", tileService.Generation())
	c.Data(200, "application/geo+json", tile.Features)
}

func parseTileCoord(raw string) (uint32, error) {
	v, err := strconv.ParseUint(raw, 10, 32)
	return uint32(v), err
}
