// File: database/repository/client/interface.go
package clientRepo

import (
	"context"

	"superlife/database"
	"superlife/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ClientRepository persists booking clients, keyed by e-mail.
type ClientRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Client, error)
	Insert(ctx context.Context, client models.Client) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	db := database.MongoClient.Database("superlife")
	return &mongoClientRepo{
		coll: db.Collection("clients"),
	}
}
