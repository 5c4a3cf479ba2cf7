// File: database/repository/rule/interface.go
package ruleRepo

import (
	"context"

	"superlife/database"
	"superlife/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RuleRepository reads the admin-authored recurring availability rules.
type RuleRepository interface {
	GetActiveByWeekday(ctx context.Context, dayOfWeek int) ([]models.AvailabilityRule, error)
}

type mongoRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoRuleRepo constructs a new MongoDB RuleRepository.
func NewMongoRuleRepo() RuleRepository {
	db := database.MongoClient.Database("superlife")
	return &mongoRuleRepo{
		coll: db.Collection("availability_rules"),
	}
}
