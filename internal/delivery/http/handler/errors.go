package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"food-delivery-service/internal/domain/repositories"
	"food-delivery-service/internal/usecase"
)

// bind decodes and validates the JSON body, writing a 400 on failure.
// Validation failures report the offending fields; anything else is a
// plain malformed-body error.
func (h *Handler) bind(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		var ve validatorv10.ValidationErrors
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{
				"detail": "validation failed",
				"fields": validationErrorsToMap(ve),
			})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "invalid request body",
			"msg":    err.Error(),
		})
		return false
	}
	return true
}

func validationErrorsToMap(ve validatorv10.ValidationErrors) map[string]string {
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fe.StructNamespace()] = fe.Error()
	}
	return out
}

// writeError maps domain errors onto HTTP status codes. Anything
// unexpected becomes a generic 500 so store internals never leak to
// clients.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrMalformedID):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id"})
	case errors.Is(err, repositories.ErrRestaurantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Restaurant not found"})
	case isInputError(err):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		h.logger.Error("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

func isInputError(err error) bool {
	inputErrors := []error{
		usecase.ErrMissingRestaurantName,
		usecase.ErrInvalidRating,
		usecase.ErrInvalidDeliveryTime,
		usecase.ErrMissingItemName,
		usecase.ErrNegativePrice,
		usecase.ErrMissingCustomer,
		usecase.ErrEmptyItems,
		usecase.ErrInvalidItem,
	}
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
