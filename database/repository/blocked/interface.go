// File: database/repository/blocked/interface.go
package blockedRepo

import (
	"context"

	"superlife/database"
	"superlife/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BlockedDateRepository reads manual all-day blocks.
type BlockedDateRepository interface {
	GetByDate(ctx context.Context, date string) ([]models.BlockedDate, error)
}

type mongoBlockedDateRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedDateRepo constructs a new MongoDB BlockedDateRepository.
func NewMongoBlockedDateRepo() BlockedDateRepository {
	db := database.MongoClient.Database("superlife")
	return &mongoBlockedDateRepo{
		coll: db.Collection("blocked_dates"),
	}
}
