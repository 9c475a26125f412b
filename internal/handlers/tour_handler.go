package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/padeltour/academia-api/internal/models"
	"github.com/padeltour/academia-api/internal/services"
)

const tourNotFound = "Tour not found"

func ListTours(ts *services.ToursService) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit, ok := parsePagination(c)
		if !ok {
			return
		}
		level := models.TourLevel(c.Query("level"))

		tours, total, err := ts.ListTours(c.Request.Context(), level, skip, limit)
		if err != nil {
			respondError(c, err, tourNotFound)
			return
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(tours, skip, limit, total))
	}
}

func GetTour(ts *services.ToursService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tour, err := ts.GetTour(c.Request.Context(), pathID(c))
		if err != nil {
			respondError(c, err, tourNotFound)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(tour, ""))
	}
}

func CreateTour(ts *services.ToursService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tour models.Tour
		if !bindJSON(c, &tour) {
			return
		}
		created, err := ts.CreateTour(c.Request.Context(), &tour)
		if err != nil {
			respondError(c, err, tourNotFound)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Tour created successfully"))
	}
}

func UpdateTour(ts *services.ToursService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.TourUpdate
		if !bindJSON(c, &patch) {
			return
		}
		updated, err := ts.UpdateTour(c.Request.Context(), pathID(c), &patch)
		if err != nil {
			respondError(c, err, tourNotFound)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Tour updated successfully"))
	}
}

func DeleteTour(ts *services.ToursService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ts.DeleteTour(c.Request.Context(), pathID(c)); err != nil {
			respondError(c, err, tourNotFound)
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse("Tour deleted successfully"))
	}
}
