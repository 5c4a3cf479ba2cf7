// File: database/repository/token/interface.go
package tokenRepo

import (
	"context"

	"superlife/database"
	"superlife/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TokenRepository persists OAuth credentials for external integrations.
type TokenRepository interface {
	Get(ctx context.Context, provider, tokenType string) (*models.IntegrationToken, error)
	Upsert(ctx context.Context, token models.IntegrationToken) error
}

type mongoTokenRepo struct {
	coll *mongo.Collection
}

// NewMongoTokenRepo constructs a new MongoDB TokenRepository.
func NewMongoTokenRepo() TokenRepository {
	db := database.MongoClient.Database("superlife")
	return &mongoTokenRepo{
		coll: db.Collection("integration_tokens"),
	}
}
