package mongo

import (
	"context"
	"time"

	"github.com/goldenage/auth/internal/auth/store"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const databaseName = "auth"

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewStore(uri string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	return &Store{
		client: client,
		db:     client.Database(databaseName),
	}, nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// ApplyMigrations creates the collection indexes. Mongo has no schema to
// migrate, so the unique username index is the whole job.
func (s *Store) ApplyMigrations() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "role", Value: 1}},
		},
	}

	_, err := s.db.Collection(userCollection).Indexes().CreateMany(ctx, indexes)
	return err
}

func (s *Store) Users() store.Users { return &usersRepo{db: s.db} }
