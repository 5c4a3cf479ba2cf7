// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"superlife/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (repo *mongoBookingRepo) Insert(ctx context.Context, booking models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (repo *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking not found")
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &booking, nil
}

func (repo *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking not found")
	}
	return nil
}

func (repo *mongoBookingRepo) UpdateSession(ctx context.Context, id, sessionDate, sessionTime string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"session_date": sessionDate,
		"session_time": sessionTime,
		"updated_at":   time.Now(),
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking session: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking not found")
	}
	return nil
}

func (repo *mongoBookingRepo) SetCalendarEventID(ctx context.Context, id, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"google_calendar_event_id": eventID, "updated_at": time.Now()}}
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to set calendar event id: %w", err)
	}
	return nil
}

func (repo *mongoBookingRepo) MarkPaidByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"stripe_payment_intent_id": paymentIntentID}
	update := bson.M{"$set": bson.M{
		"payment_status": models.PaymentStatusPaid,
		"status":         models.BookingStatusConfirmed,
		"updated_at":     time.Now(),
	}}

	var booking models.Booking
	err := repo.coll.FindOneAndUpdate(ctx, filter, update).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no booking for payment intent %s", paymentIntentID)
		}
		return nil, fmt.Errorf("failed to mark booking paid: %w", err)
	}
	return &booking, nil
}

func (repo *mongoBookingRepo) InsertPackageSessions(ctx context.Context, sessions []models.PackageSession) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(sessions))
	for i, s := range sessions {
		docs[i] = s
	}
	if _, err := repo.sessions.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert package sessions: %w", err)
	}
	return nil
}

func (repo *mongoBookingRepo) SetFirstPackageSessionEvent(ctx context.Context, bookingID, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"booking_id": bookingID, "session_number": 1}
	update := bson.M{"$set": bson.M{
		"google_calendar_event_id": eventID,
		"status":                   "scheduled",
	}}
	if _, err := repo.sessions.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to update package session: %w", err)
	}
	return nil
}
