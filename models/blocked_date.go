package models

import "time"

// BlockedDate marks a whole calendar date on which no bookings are offered.
type BlockedDate struct {
	ID        string    `bson:"id" json:"id"`
	Date      string    `bson:"date" json:"date"` // e.g. "2025-02-25"
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
