package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"nearby/internal/models/request_models"
	"nearby/internal/services"
	"nearby/pkg/utils"
)

type DiscoveryController struct {
	discoveryService services.DiscoveryServiceInterface
	logger           *zap.Logger
}

func NewDiscoveryController(discoveryService services.DiscoveryServiceInterface, logger *zap.Logger) *DiscoveryController {
	return &DiscoveryController{
		discoveryService: discoveryService,
		logger:           logger,
	}
}

// Discover godoc
// GET /discover?lat=21.0340&lng=105.8511&radius=1000&label=Cafe%20Giang
func (d *DiscoveryController) Discover(c *gin.Context) {
	var req request_models.DiscoverRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "lat and lng must be numbers; radius must be an integer")
		return
	}

	resp, err := d.discoveryService.Discover(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, d.logger, err)
		return
	}

	link, err := DiscoverLink(requestBaseURL(c.Request), resp.Center.Latitude, resp.Center.Longitude, resp.RadiusMeters, resp.Label)
	if err != nil {
		d.logger.Warn("build discover link", zap.Error(err))
	} else {
		resp.Link = link
	}

	message := "Places discovered successfully"
	if resp.Partial {
		message = "Discovery interrupted, returning finished categories"
	}
	utils.RespondSuccess(c, resp, message)
}

func (d *DiscoveryController) ListCategories(c *gin.Context) {
	utils.RespondSuccess(c, d.discoveryService.ListCategories(), "Categories fetched successfully")
}
