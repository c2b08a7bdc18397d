package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionProfiles = "candidate_profiles"
	CollectionResumes  = "resume_metadata"
)

// NewMongoConnection connects to MongoDB and verifies the connection with a
// ping before returning the database handle.
func NewMongoConnection(uri, database string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(20).
		SetMinPoolSize(1).
		SetMaxConnIdleTime(30 * time.Second).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, client.Database(database), nil
}

// EnsureIndexes creates the indexes both collections rely on. The unique
// userId index is what enforces the one-profile-per-user invariant.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	profileIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "organizationId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "skills", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "location", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "isActive", Value: 1}},
		},
	}
	if _, err := db.Collection(CollectionProfiles).Indexes().CreateMany(ctx, profileIndexes); err != nil {
		return fmt.Errorf("failed to create profile indexes: %w", err)
	}

	resumeIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "profileId", Value: 1}, {Key: "isActive", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "s3Key", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys: bson.D{{Key: "uploadedAt", Value: -1}},
		},
	}
	if _, err := db.Collection(CollectionResumes).Indexes().CreateMany(ctx, resumeIndexes); err != nil {
		return fmt.Errorf("failed to create resume indexes: %w", err)
	}

	return nil
}
