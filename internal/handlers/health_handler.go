package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const serviceName = "Padel Tour Academia API"

func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": serviceName + " is running"})
	}
}

func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": serviceName,
		})
	}
}
