package controllers

import "github.com/gin-gonic/gin"

func RegisterRoutes(
	r *gin.Engine,
	discoveryController *DiscoveryController,
	curatedController *CuratedController,
	healthController *HealthController,
) {
	r.GET("/health", healthController.Health)

	discoverGroup := r.Group("/discover")
	discoverGroup.GET("", discoveryController.Discover)
	discoverGroup.GET("/categories", discoveryController.ListCategories)

	r.GET("/curated", curatedController.ListCurated)
}
