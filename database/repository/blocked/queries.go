// File: database/repository/blocked/queries.go
package blockedRepo

import (
	"context"
	"fmt"
	"time"

	"superlife/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (repo *mongoBlockedDateRepo) GetByDate(ctx context.Context, date string) ([]models.BlockedDate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked dates: %w", err)
	}
	defer cursor.Close(ctx)

	var blocked []models.BlockedDate
	if err := cursor.All(ctx, &blocked); err != nil {
		return nil, fmt.Errorf("error decoding blocked dates: %w", err)
	}

	return blocked, nil
}
