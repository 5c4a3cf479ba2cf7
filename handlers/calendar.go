package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"superlife/services/calendar"
)

var CalendarService calendar.CalendarService

// CalendarAuth redirects the admin to Google's consent screen.
// GET /api/calendar/auth
func CalendarAuth(c *gin.Context) {
	state := uuid.New().String()
	c.SetCookie("gcal_oauth_state", state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, CalendarService.AuthURL(state))
}

// CalendarCallback completes the OAuth flow and stores the credential.
// GET /api/calendar/callback?code=...&state=...
func CalendarCallback(c *gin.Context) {
	state, err := c.Cookie("gcal_oauth_state")
	if err != nil || state == "" || c.Query("state") != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state mismatch"})
		return
	}
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	if err := CalendarService.ExchangeCode(c.Request.Context(), code); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to connect Google Calendar."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"connected": true})
}

// CalendarStatus reports whether a calendar credential is on file.
// GET /api/calendar/status
func CalendarStatus(c *gin.Context) {
	connected, err := CalendarService.Connected(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to check calendar status."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"connected": connected})
}
