package mongodb

import (
	"context"

	"github.com/evandanowitz/movie-api/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type movieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *movieRepository {
	return &movieRepository{coll: db.Collection(moviesCollection)}
}

func (r *movieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var movies []*domain.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"title": title})
}

func (r *movieRepository) GetByGenreName(ctx context.Context, name string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"genre.name": name})
}

func (r *movieRepository) GetByDirectorName(ctx context.Context, name string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"director.name": name})
}

func (r *movieRepository) findOne(ctx context.Context, filter bson.M) (*domain.Movie, error) {
	var movie domain.Movie
	if err := r.coll.FindOne(ctx, filter).Decode(&movie); err != nil {
		return nil, err
	}
	return &movie, nil
}
