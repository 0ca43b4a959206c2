//go:build integration

// Package testutil provides the MongoDB testcontainer and fixtures shared by the
// storefront integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultMongoImage is started unless TEST_MONGO_IMAGE names another image.
const DefaultMongoImage = "mongo:7.0"

// MongoDBContainer is a running MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
	Image     string
}

// MongoImage returns the image integration tests run against.
func MongoImage() string {
	if img := os.Getenv("TEST_MONGO_IMAGE"); img != "" {
		return img
	}
	return DefaultMongoImage
}

// SetupMongoDB starts a MongoDB container. Packages with many tests should share
// one through SetupTestMainWithMongoDB.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	image := MongoImage()
	container, err := mongodb.Run(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container %s: %w", image, err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}

	return &MongoDBContainer{Container: container, URI: uri, Image: image}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate mongodb container: %w", err)
	}
	return nil
}

// SeedCollection inserts raw documents into dbName.collection, bypassing the
// repositories. Tests use it to plant documents the service did not write, such
// as settings from an older release.
func SeedCollection(ctx context.Context, uri, dbName, collection string, docs ...interface{}) error {
	if len(docs) == 0 {
		return nil
	}
	return withClient(ctx, uri, func(client *mongo.Client) error {
		if _, err := client.Database(dbName).Collection(collection).InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("seed %s.%s: %w", dbName, collection, err)
		}
		return nil
	})
}

// CountDocuments counts the documents of dbName.collection matching filter.
func CountDocuments(ctx context.Context, uri, dbName, collection string, filter bson.M) (int64, error) {
	var n int64
	err := withClient(ctx, uri, func(client *mongo.Client) error {
		var err error
		n, err = client.Database(dbName).Collection(collection).CountDocuments(ctx, filter)
		return err
	})
	return n, err
}

func withClient(ctx context.Context, uri string, fn func(*mongo.Client) error) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("connect to %s: %w", uri, err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	return fn(client)
}
