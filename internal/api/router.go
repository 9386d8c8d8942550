package api

import (
	routes "tilesynth/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRouter initializes all application routes
func SetupRouter(r *gin.Engine, config map[string]string) {
	// API group
	api := r.Group("/api")

	// Setup main handlers
	routes.SetupMainHandlers(r.Group(""), config)

	// Setup tile handlers
	routes.SetupTileHandlers(api)

	// Setup configuration handlers
	routes.SetupConfigHandlers(api)
}
