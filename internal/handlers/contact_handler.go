package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/padeltour/academia-api/internal/models"
	"github.com/padeltour/academia-api/internal/services"
)

const messageNotFound = "Message not found"

// SendContactMessage only acknowledges; the stored message is for staff eyes.
func SendContactMessage(cs *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var msg models.ContactMessage
		if !bindJSON(c, &msg) {
			return
		}
		if _, err := cs.SendMessage(c.Request.Context(), &msg); err != nil {
			respondError(c, err, messageNotFound)
			return
		}
		c.JSON(http.StatusCreated, models.MessageResponse("Message sent successfully"))
	}
}

func ListContactMessages(cs *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit, ok := parsePagination(c)
		if !ok {
			return
		}
		unreadOnly, ok := parseBoolQuery(c, "unread_only", false)
		if !ok {
			return
		}
		msgs, total, err := cs.ListMessages(c.Request.Context(), unreadOnly, skip, limit)
		if err != nil {
			respondError(c, err, messageNotFound)
			return
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(msgs, skip, limit, total))
	}
}

func GetContactMessage(cs *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		msg, err := cs.GetMessage(c.Request.Context(), pathID(c))
		if err != nil {
			respondError(c, err, messageNotFound)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(msg, ""))
	}
}

func MarkContactMessageRead(cs *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cs.MarkRead(c.Request.Context(), pathID(c)); err != nil {
			respondError(c, err, messageNotFound)
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse("Message marked as read"))
	}
}

func DeleteContactMessage(cs *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cs.DeleteMessage(c.Request.Context(), pathID(c)); err != nil {
			respondError(c, err, messageNotFound)
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse("Message deleted successfully"))
	}
}
