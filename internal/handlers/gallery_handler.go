package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/padeltour/academia-api/internal/models"
	"github.com/padeltour/academia-api/internal/services"
)

const galleryNotFound = "Gallery item not found"

func ListGallery(gs *services.GalleryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit, ok := parsePagination(c)
		if !ok {
			return
		}
		category := models.GalleryCategory(c.Query("category"))

		items, total, err := gs.ListItems(c.Request.Context(), category, skip, limit)
		if err != nil {
			respondError(c, err, galleryNotFound)
			return
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(items, skip, limit, total))
	}
}

func GetGalleryItem(gs *services.GalleryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := gs.GetItem(c.Request.Context(), pathID(c))
		if err != nil {
			respondError(c, err, galleryNotFound)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(item, ""))
	}
}

func CreateGalleryItem(gs *services.GalleryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.GalleryItem
		if !bindJSON(c, &item) {
			return
		}
		created, err := gs.CreateItem(c.Request.Context(), &item)
		if err != nil {
			respondError(c, err, galleryNotFound)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Gallery item created successfully"))
	}
}

func UpdateGalleryItem(gs *services.GalleryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.GalleryItemUpdate
		if !bindJSON(c, &patch) {
			return
		}
		updated, err := gs.UpdateItem(c.Request.Context(), pathID(c), &patch)
		if err != nil {
			respondError(c, err, galleryNotFound)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Gallery item updated successfully"))
	}
}

func DeleteGalleryItem(gs *services.GalleryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gs.DeleteItem(c.Request.Context(), pathID(c)); err != nil {
			respondError(c, err, galleryNotFound)
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse("Gallery item deleted successfully"))
	}
}
