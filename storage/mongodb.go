package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkpaste/inkpaste/models"
)

var _ PasteStore = (*MongoStore)(nil)

// MongoStore implements PasteStore using MongoDB.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore creates a new MongoDB storage backend.
func NewMongoStore(url, dbName string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	collection := client.Database(dbName).Collection("pastes")

	store := &MongoStore{
		client:     client,
		collection: collection,
	}

	// Index on created_at for queries. No TTL index: expiry is lazy and
	// handled on access, and the never-expires sentinel is not a Date.
	if err := store.createIndexes(); err != nil {
		return nil, err
	}

	return store, nil
}

func (m *MongoStore) createIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createdAtIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	}

	_, err := m.collection.Indexes().CreateOne(ctx, createdAtIndex)
	return err
}

// Put inserts a new paste. A duplicate _id maps to ErrDuplicateID.
func (m *MongoStore) Put(ctx context.Context, paste *models.Paste) error {
	_, err := m.collection.InsertOne(ctx, paste)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

// Get retrieves a paste by its ID.
func (m *MongoStore) Get(ctx context.Context, id string) (*models.Paste, error) {
	var paste models.Paste
	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&paste)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &paste, nil
}

// Delete removes a paste; deleting an absent ID is not an error.
func (m *MongoStore) Delete(ctx context.Context, id string) error {
	_, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Take removes the paste and returns it. FindOneAndDelete is atomic per
// document, so at most one concurrent caller observes the record.
func (m *MongoStore) Take(ctx context.Context, id string) (*models.Paste, error) {
	var paste models.Paste
	err := m.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&paste)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &paste, nil
}

// Ping verifies the MongoDB connection.
func (m *MongoStore) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Close closes the MongoDB connection.
func (m *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return m.client.Disconnect(ctx)
}
