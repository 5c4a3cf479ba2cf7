package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"superlife/models"
	"superlife/services/booking"
)

var BookingService booking.BookingService

// CreateBooking creates a booking from the public site.
// POST /api/booking
func CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	conf, err := BookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		status, msg := bookingErrorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, conf)
}

// CancelBooking cancels an existing booking.
// POST /api/booking/:id/cancel
func CancelBooking(c *gin.Context) {
	if err := BookingService.CancelBooking(c.Request.Context(), c.Param("id")); err != nil {
		status, msg := bookingErrorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.BookingStatusCancelled})
}

func bookingErrorStatus(err error) (int, string) {
	var be *booking.BookingError
	if errors.As(err, &be) {
		switch be.Code {
		case "validationError":
			return http.StatusBadRequest, be.Message
		case "paymentError":
			return http.StatusPaymentRequired, be.Message
		case "notFound":
			return http.StatusNotFound, be.Message
		}
	}
	return http.StatusInternalServerError, "Unable to process booking."
}
