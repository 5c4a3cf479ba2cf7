// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"superlife/database"
	"superlife/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists bookings and their package sessions.
type BookingRepository interface {
	Insert(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetActiveByDate(ctx context.Context, date string) ([]models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateSession(ctx context.Context, id, sessionDate, sessionTime string) error
	SetCalendarEventID(ctx context.Context, id, eventID string) error
	MarkPaidByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Booking, error)

	InsertPackageSessions(ctx context.Context, sessions []models.PackageSession) error
	SetFirstPackageSessionEvent(ctx context.Context, bookingID, eventID string) error
}

type mongoBookingRepo struct {
	coll     *mongo.Collection
	sessions *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("superlife")
	return &mongoBookingRepo{
		coll:     db.Collection("bookings"),
		sessions: db.Collection("package_sessions"),
	}
}
