// File: database/repository/rule/queries.go
package ruleRepo

import (
	"context"
	"fmt"
	"time"

	"superlife/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (repo *mongoRuleRepo) GetActiveByWeekday(ctx context.Context, dayOfWeek int) ([]models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"is_active":   true,
		"day_of_week": dayOfWeek,
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability rules: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.AvailabilityRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("error decoding availability rules: %w", err)
	}

	return rules, nil
}
