package repository

import (
	"context"

	"github.com/evandanowitz/movie-api/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id bson.ObjectID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, username string, update domain.UserUpdate) (*domain.User, error)
	AddFavorite(ctx context.Context, username string, movieID bson.ObjectID) (*domain.User, error)
	RemoveFavorite(ctx context.Context, username string, movieID bson.ObjectID) (*domain.User, error)
	Delete(ctx context.Context, username string) error
}

type MovieRepository interface {
	List(ctx context.Context) ([]*domain.Movie, error)
	GetByTitle(ctx context.Context, title string) (*domain.Movie, error)
	GetByGenreName(ctx context.Context, name string) (*domain.Movie, error)
	GetByDirectorName(ctx context.Context, name string) (*domain.Movie, error)
}

type Repositories struct {
	User  UserRepository
	Movie MovieRepository
}
