package service

import (
	"context"
	"errors"

	"github.com/evandanowitz/movie-api/internal/domain"
	"github.com/evandanowitz/movie-api/internal/repository"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var ErrMovieNotFound = errors.New("movie not found")

type MovieService struct {
	movieRepo repository.MovieRepository
}

func NewMovieService(movieRepo repository.MovieRepository) *MovieService {
	return &MovieService{movieRepo: movieRepo}
}

func (s *MovieService) List(ctx context.Context) ([]*domain.Movie, error) {
	return s.movieRepo.List(ctx)
}

func (s *MovieService) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	movie, err := s.movieRepo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

// GetGenre returns the genre subdocument of any movie carrying that genre.
func (s *MovieService) GetGenre(ctx context.Context, name string) (*domain.Genre, error) {
	movie, err := s.movieRepo.GetByGenreName(ctx, name)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &movie.Genre, nil
}

// GetDirector returns the director subdocument of any movie they directed.
func (s *MovieService) GetDirector(ctx context.Context, name string) (*domain.Director, error) {
	movie, err := s.movieRepo.GetByDirectorName(ctx, name)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &movie.Director, nil
}
