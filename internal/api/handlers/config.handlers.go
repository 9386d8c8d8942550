package routes

import (
	"github.com/gin-gonic/gin"

	"tilesynth/internal/service/tiles"
)

// SetupConfigHandlers registers the configuration endpoints
func SetupConfigHandlers(router *gin.RouterGroup) {
	configGroup := router.Group("/config")

	configGroup.GET("/feature-count", GetFeatureCount)
	configGroup.PUT("/feature-count", PutFeatureCount)
}

// GetFeatureCount reports the live feature budget and cache generation
func GetFeatureCount(c *gin.Context) {
	tileService := tiles.GetTileService()
	c.JSON(200, gin.H{
		"value":      tileService.TotalFeatureCount(),
		"generation": tileService.Generation(),
	})
}

// PutFeatureCount installs a new feature budget
func PutFeatureCount(c *gin.Context) {
	var body struct {
		Value int `json:"value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{
			"status": "error",
			"error":  "request body must be {\"value\": <integer>}",
		})
		return
	}

	if err := tiles.GetTileService().SetTotalFeatureCount(c.Request.Context(), body.Value); err != nil {
		c.JSON(400, gin.H{
			"status": "error",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(200, gin.H{
		"status": "success",
		"value":  body.Value,
	})
}
