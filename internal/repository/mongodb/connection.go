package mongodb

import (
	"context"

	"github.com/evandanowitz/movie-api/internal/config"
	"github.com/evandanowitz/movie-api/internal/repository"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	usersCollection  = "users"
	moviesCollection = "movies"
)

func NewConnection(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	client, err := mongo.Connect(
		options.Client().
			ApplyURI(cfg.ConnectionURI).
			SetConnectTimeout(cfg.ConnectTimeout).
			SetRetryWrites(true).
			SetRetryReads(true),
	)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return client.Database(cfg.Database), nil
}

// EnsureIndexes creates the unique username index. Uniqueness is enforced at
// the store level so concurrent registrations of the same name cannot both win.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func NewRepositories(db *mongo.Database) *repository.Repositories {
	return &repository.Repositories{
		User:  NewUserRepository(db),
		Movie: NewMovieRepository(db),
	}
}
