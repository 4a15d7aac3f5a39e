package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"nearby/internal/services"
	"nearby/pkg/utils"
)

type CuratedController struct {
	discoveryService services.DiscoveryServiceInterface
	logger           *zap.Logger
}

func NewCuratedController(discoveryService services.DiscoveryServiceInterface, logger *zap.Logger) *CuratedController {
	return &CuratedController{
		discoveryService: discoveryService,
		logger:           logger,
	}
}

func (cc *CuratedController) ListCurated(c *gin.Context) {
	places, err := cc.discoveryService.ListCurated(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, places, "Curated places fetched successfully")
}
