// File: database/repository/token/crud.go
package tokenRepo

import (
	"context"
	"fmt"
	"time"

	"superlife/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoTokenRepo) Get(ctx context.Context, provider, tokenType string) (*models.IntegrationToken, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider": provider, "token_type": tokenType}

	var token models.IntegrationToken
	err := repo.coll.FindOne(ctx, filter).Decode(&token)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("token lookup failed: %w", err)
	}
	return &token, nil
}

func (repo *mongoTokenRepo) Upsert(ctx context.Context, token models.IntegrationToken) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	token.UpdatedAt = time.Now()

	filter := bson.M{"provider": token.Provider, "token_type": token.TokenType}
	update := bson.M{"$set": token}
	opts := options.Update().SetUpsert(true)

	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert token: %w", err)
	}
	return nil
}
