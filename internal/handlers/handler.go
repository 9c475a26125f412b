package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/padeltour/academia-api/internal/helpers"
	"github.com/padeltour/academia-api/internal/models"
	"github.com/padeltour/academia-api/internal/services"
)

const (
	defaultLimit = 100
	maxLimit     = 100
)

// parsePagination reads skip and limit, answering 400 itself when either is out
// of range.
func parsePagination(c *gin.Context) (skip, limit int64, ok bool) {
	skip, err := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("skip must be a non-negative integer"))
		return 0, 0, false
	}
	limit, err = strconv.ParseInt(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)), 10, 64)
	if err != nil || limit < 1 || limit > maxLimit {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("limit must be an integer between 1 and 100"))
		return 0, 0, false
	}
	return skip, limit, true
}

func parseBoolQuery(c *gin.Context, key string, def bool) (bool, bool) {
	raw, present := c.GetQuery(key)
	if !present || raw == "" {
		return def, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(key+" must be a boolean"))
		return false, false
	}
	return v, true
}

func pathID(c *gin.Context) string {
	return helpers.StringTrim(c.Param("id"))
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body: "+err.Error()))
		return false
	}
	return true
}

// respondError maps service errors to client responses. Anything it does not
// recognise is handed to the error middleware, which answers 500.
func respondError(c *gin.Context, err error, notFound string) {
	var refErr *services.ReferenceNotFoundError
	switch {
	case errors.As(err, &refErr):
		c.JSON(http.StatusNotFound, models.ErrorResponse(refErr.Error()))
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(notFound))
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrDuplicateID):
		c.JSON(http.StatusConflict, models.ErrorResponse(models.ErrDuplicateID.Error()))
	default:
		_ = c.Error(err)
	}
}
