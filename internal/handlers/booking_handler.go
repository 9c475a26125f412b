package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/padeltour/academia-api/internal/helpers"
	"github.com/padeltour/academia-api/internal/models"
	"github.com/padeltour/academia-api/internal/services"
)

const bookingNotFound = "Booking not found"

func ListBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit, ok := parsePagination(c)
		if !ok {
			return
		}
		status := models.BookingStatus(c.Query("status"))
		tourID := helpers.StringTrim(c.Query("tour_id"))

		bookings, total, err := bs.ListBookings(c.Request.Context(), status, tourID, skip, limit)
		if err != nil {
			respondError(c, err, bookingNotFound)
			return
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(bookings, skip, limit, total))
	}
}

func BookingStats(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := bs.Stats(c.Request.Context())
		if err != nil {
			respondError(c, err, bookingNotFound)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(stats, ""))
	}
}

func GetBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		booking, err := bs.GetBooking(c.Request.Context(), pathID(c))
		if err != nil {
			respondError(c, err, bookingNotFound)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, ""))
	}
}

func CreateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BookingRequest
		if !bindJSON(c, &req) {
			return
		}
		booking, err := bs.CreateBooking(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err, bookingNotFound)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "Booking created successfully"))
	}
}

func UpdateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.BookingUpdate
		if !bindJSON(c, &patch) {
			return
		}
		booking, err := bs.UpdateBooking(c.Request.Context(), pathID(c), &patch)
		if err != nil {
			respondError(c, err, bookingNotFound)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking updated successfully"))
	}
}

func UpdateBookingStatus(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var status models.BookingStatusUpdate
		if !bindJSON(c, &status) {
			return
		}
		booking, err := bs.UpdateStatus(c.Request.Context(), pathID(c), &status)
		if err != nil {
			respondError(c, err, bookingNotFound)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking status updated"))
	}
}

func DeleteBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := bs.DeleteBooking(c.Request.Context(), pathID(c)); err != nil {
			respondError(c, err, bookingNotFound)
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse("Booking deleted successfully"))
	}
}
