package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/padeltour/academia-api/internal/models"
	"github.com/padeltour/academia-api/internal/services"
)

func GetSettings(ss *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := ss.GetSettings(c.Request.Context())
		if err != nil {
			respondError(c, err, "Settings not found")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(settings, ""))
	}
}

func UpdateSettings(ss *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.CompanySettingsUpdate
		if !bindJSON(c, &patch) {
			return
		}
		settings, err := ss.UpdateSettings(c.Request.Context(), &patch)
		if err != nil {
			respondError(c, err, "Settings not found")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(settings, "Settings updated successfully"))
	}
}

func DashboardStats(ds *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := ds.Stats(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(stats, ""))
	}
}
