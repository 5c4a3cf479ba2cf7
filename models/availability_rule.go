package models

import "time"

// AvailabilityRule represents one recurring weekly open window authored by the admin.
type AvailabilityRule struct {
	ID        string    `bson:"id" json:"id"`
	DayOfWeek int       `bson:"day_of_week" json:"day_of_week"` // 0 = Sunday .. 6 = Saturday
	StartTime string    `bson:"start_time" json:"start_time"`   // wall clock in the operating timezone, e.g. "09:00:00"
	EndTime   string    `bson:"end_time" json:"end_time"`       // must be after StartTime
	Active    bool      `bson:"is_active" json:"is_active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
