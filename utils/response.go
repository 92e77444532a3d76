package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func RespondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

func RespondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

func RespondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// RespondInvalidInput renders request binding failures. Validator
// errors come back as a field-to-rule map so the form can mark the
// offending inputs.
func RespondInvalidInput(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": ProcessValidationErrors(validationErrors),
		})
		return
	}
	RespondBadRequest(c, err)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrorRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrorPartyRequired),
		errors.Is(err, ErrorItemsRequired),
		errors.Is(err, ErrorDuplicateValue):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
