package handlers

import (
	"errors"
	"net/http"

	"skillswap-api/helper"
	"skillswap-api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Every handler funnels service errors through here so the sentinel taxonomy
// maps to HTTP codes in exactly one place.
func sendServiceError(h *helper.HTTPHelper, c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		h.SendNotFoundError(c, err.Error(), h.EmptyJsonMap())
	case errors.Is(err, models.ErrForbidden):
		h.SendForbiddenError(c, err.Error(), h.EmptyJsonMap())
	case errors.Is(err, models.ErrUnauthorized):
		h.SendUnauthorizedError(c, err.Error(), h.EmptyJsonMap())
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrInvalidState),
		errors.Is(err, models.ErrDuplicate):
		h.SendBadRequest(c, err.Error(), h.EmptyJsonMap())
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// sendBindError reports field-level detail when the binding failure came from
// the validator, a flat message otherwise.
func sendBindError(h *helper.HTTPHelper, c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && h.Translator != nil {
		h.SendValidationError(c, validationErrors)
		return
	}
	h.SendBadRequest(c, err.Error(), h.EmptyJsonMap())
}

func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get("user_id")
	return userID.(uint)
}

func currentUserIsAdmin(c *gin.Context) bool {
	isAdmin, exists := c.Get("is_admin")
	return exists && isAdmin.(bool)
}
