package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"superlife/models"
)

// ListBookings returns bookings for the admin dashboard, optionally filtered
// by date and status.
// GET /api/admin/bookings?date=YYYY-MM-DD&status=confirmed
func ListBookings(c *gin.Context) {
	filter := models.BookingFilter{
		Date:   c.Query("date"),
		Status: c.Query("status"),
	}

	bookings, err := BookingService.ListBookings(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list bookings."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingStatus applies an admin status transition to a booking.
// PATCH /api/admin/bookings/:id/status
func UpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	if err := BookingService.UpdateBookingStatus(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		status, msg := bookingErrorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

// RescheduleBooking moves a booking to a new slot.
// PATCH /api/admin/bookings/:id/reschedule
func RescheduleBooking(c *gin.Context) {
	var slot models.SlotPayload
	if err := c.ShouldBindJSON(&slot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot is required"})
		return
	}

	if err := BookingService.RescheduleBooking(c.Request.Context(), c.Param("id"), slot); err != nil {
		status, msg := bookingErrorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rescheduled": true})
}
