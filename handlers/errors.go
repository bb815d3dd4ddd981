package handlers

import (
	"errors"
	"net/http"

	"medibook/services/booking"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps booking error codes onto HTTP statuses and writes the
// standard error envelope. Anything outside the taxonomy is a 500.
func respondError(c *gin.Context, err error) {
	var be *booking.BookingError
	if !errors.As(err, &be) {
		utils.JSONError(c, http.StatusInternalServerError, "internal server error", err.Error())
		return
	}

	status := http.StatusInternalServerError
	switch be.Code {
	case booking.CodeNotFound:
		status = http.StatusNotFound
	case booking.CodeConflict:
		status = http.StatusConflict
	case booking.CodeInvalidTransition:
		status = http.StatusUnprocessableEntity
	case booking.CodeValidation:
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{"error": be.Message, "code": be.Code})
}
