package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/padeltour/academia-api/internal/models"
	"github.com/padeltour/academia-api/internal/services"
)

const coachNotFound = "Coach not found"

func ListCoaches(cs *services.CoachesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit, ok := parsePagination(c)
		if !ok {
			return
		}
		coaches, total, err := cs.ListCoaches(c.Request.Context(), skip, limit)
		if err != nil {
			respondError(c, err, coachNotFound)
			return
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(coaches, skip, limit, total))
	}
}

func GetCoach(cs *services.CoachesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		coach, err := cs.GetCoach(c.Request.Context(), pathID(c))
		if err != nil {
			respondError(c, err, coachNotFound)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(coach, ""))
	}
}

func CreateCoach(cs *services.CoachesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coach models.Coach
		if !bindJSON(c, &coach) {
			return
		}
		created, err := cs.CreateCoach(c.Request.Context(), &coach)
		if err != nil {
			respondError(c, err, coachNotFound)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Coach created successfully"))
	}
}

func UpdateCoach(cs *services.CoachesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.CoachUpdate
		if !bindJSON(c, &patch) {
			return
		}
		updated, err := cs.UpdateCoach(c.Request.Context(), pathID(c), &patch)
		if err != nil {
			respondError(c, err, coachNotFound)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Coach updated successfully"))
	}
}

func DeleteCoach(cs *services.CoachesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cs.DeleteCoach(c.Request.Context(), pathID(c)); err != nil {
			respondError(c, err, coachNotFound)
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse("Coach deleted successfully"))
	}
}
