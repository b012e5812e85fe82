package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pveldman/tasklane/config"
)

// Connect opens a MongoDB client, verifies the connection and returns the
// configured database handle.
func Connect(ctx context.Context, cfg config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Successfully connected to MongoDB, using database %q", cfg.Database)
	return client.Database(cfg.Database), nil
}

// EnsureIndexes creates the secondary indexes the query paths rely on. Safe
// to run on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	_, err = db.Collection("tasks").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "isCompleted", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "priority", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "dueDate", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("tasks indexes: %w", err)
	}

	_, err = db.Collection("categories").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "name", Value: 1}}, Options: unique},
	})
	if err != nil {
		return fmt.Errorf("categories indexes: %w", err)
	}

	return nil
}
