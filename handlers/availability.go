package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"superlife/services/availability"
)

var AvailabilityService availability.Service

// GetAvailability returns the bookable slots for a date.
// GET /api/booking/availability?date=YYYY-MM-DD&duration=60
func GetAvailability(c *gin.Context) {
	date := c.Query("date")
	duration := 60
	if raw := c.Query("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a number"})
			return
		}
		duration = parsed
	}

	slots, err := AvailabilityService.ComputeAvailability(c.Request.Context(), date, duration)
	if err != nil {
		var invalid *availability.InvalidRequestError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Message})
			return
		}
		// Data could not be read; never guess at availability.
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to fetch availability."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
