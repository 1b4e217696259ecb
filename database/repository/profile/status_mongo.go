package profileRepo

import (
	"fmt"
	"time"

	"localserve/config"
	"localserve/database"
	"localserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStatusRepo implements StatusRepository using MongoDB.
type MongoStatusRepo struct {
	coll *mongo.Collection
}

// NewMongoStatusRepo creates a StatusRepository over the status_checks
// collection.
func NewMongoStatusRepo() StatusRepository {
	coll := database.MongoClient.Database(config.AppConfig.DBName).Collection("status_checks")
	return &MongoStatusRepo{coll: coll}
}

// Create inserts a status check document.
func (r *MongoStatusRepo) Create(check *models.StatusCheck) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, check); err != nil {
		return fmt.Errorf("failed to create status check: %w", err)
	}
	return nil
}

// GetAll lists status check documents, capped at listLimit.
func (r *MongoStatusRepo) GetAll() ([]models.StatusCheck, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}
	defer cursor.Close(ctx)

	var checks []models.StatusCheck
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, fmt.Errorf("failed to decode status checks: %w", err)
	}
	return checks, nil
}
