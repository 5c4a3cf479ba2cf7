package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"superlife/models"
	"superlife/services/availability"
)

type availabilityStub struct {
	slots   []models.Slot
	err     error
	gotDate string
	gotDur  int
}

func (s *availabilityStub) ComputeAvailability(ctx context.Context, date string, durationMinutes int) ([]models.Slot, error) {
	s.gotDate = date
	s.gotDur = durationMinutes
	if s.err != nil {
		return nil, s.err
	}
	return s.slots, nil
}

func setupAvailabilityRouter(stub *availabilityStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	AvailabilityService = stub
	r := gin.New()
	r.GET("/api/booking/availability", GetAvailability)
	return r
}

func TestGetAvailabilityOK(t *testing.T) {
	stub := &availabilityStub{slots: []models.Slot{
		{Start: "2025-06-02T08:00:00Z", End: "2025-06-02T09:00:00Z", Label: "09:00", TimezoneLabel: "UK Time"},
	}}
	r := setupAvailabilityRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/availability?date=2025-06-02&duration=45", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if stub.gotDate != "2025-06-02" || stub.gotDur != 45 {
		t.Errorf("service called with (%q, %d), want (2025-06-02, 45)", stub.gotDate, stub.gotDur)
	}

	var body struct {
		Slots []models.Slot `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(body.Slots) != 1 || body.Slots[0].Label != "09:00" {
		t.Errorf("unexpected slots: %+v", body.Slots)
	}
}

func TestGetAvailabilityDefaultsDuration(t *testing.T) {
	stub := &availabilityStub{}
	r := setupAvailabilityRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/availability?date=2025-06-02", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if stub.gotDur != 60 {
		t.Errorf("default duration = %d, want 60", stub.gotDur)
	}
}

func TestGetAvailabilityInvalidRequest(t *testing.T) {
	stub := &availabilityStub{err: &availability.InvalidRequestError{Message: "date is required"}}
	r := setupAvailabilityRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/availability", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetAvailabilityFailsClosed(t *testing.T) {
	stub := &availabilityStub{err: &availability.AvailabilityUnavailableError{Reason: "calendar"}}
	r := setupAvailabilityRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/availability?date=2025-06-02", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body["error"] != "Unable to fetch availability." {
		t.Errorf("error message = %q, internal detail must not leak", body["error"])
	}
}

func TestGetAvailabilityBadDuration(t *testing.T) {
	stub := &availabilityStub{}
	r := setupAvailabilityRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/availability?date=2025-06-02&duration=soon", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
