package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/padeltour/academia-api/internal/models"
	"github.com/padeltour/academia-api/internal/services"
)

const testimonialNotFound = "Testimonial not found"

// ListTestimonials shows approved testimonials unless approved_only=false.
func ListTestimonials(ts *services.TestimonialsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit, ok := parsePagination(c)
		if !ok {
			return
		}
		approvedOnly, ok := parseBoolQuery(c, "approved_only", true)
		if !ok {
			return
		}
		testimonials, total, err := ts.ListTestimonials(c.Request.Context(), approvedOnly, skip, limit)
		if err != nil {
			respondError(c, err, testimonialNotFound)
			return
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(testimonials, skip, limit, total))
	}
}

func GetTestimonial(ts *services.TestimonialsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := ts.GetTestimonial(c.Request.Context(), pathID(c))
		if err != nil {
			respondError(c, err, testimonialNotFound)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(t, ""))
	}
}

func CreateTestimonial(ts *services.TestimonialsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var t models.Testimonial
		if !bindJSON(c, &t) {
			return
		}
		created, err := ts.CreateTestimonial(c.Request.Context(), &t)
		if err != nil {
			respondError(c, err, testimonialNotFound)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Testimonial submitted for review"))
	}
}

func UpdateTestimonial(ts *services.TestimonialsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.TestimonialUpdate
		if !bindJSON(c, &patch) {
			return
		}
		updated, err := ts.UpdateTestimonial(c.Request.Context(), pathID(c), &patch)
		if err != nil {
			respondError(c, err, testimonialNotFound)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Testimonial updated successfully"))
	}
}

func DeleteTestimonial(ts *services.TestimonialsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ts.DeleteTestimonial(c.Request.Context(), pathID(c)); err != nil {
			respondError(c, err, testimonialNotFound)
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse("Testimonial deleted successfully"))
	}
}
