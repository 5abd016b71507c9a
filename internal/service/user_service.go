package service

import (
	"context"
	"errors"
	"time"

	"github.com/evandanowitz/movie-api/internal/config"
	"github.com/evandanowitz/movie-api/internal/domain"
	"github.com/evandanowitz/movie-api/internal/repository"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameExists = errors.New("username already exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidMovieID = errors.New("invalid movie id")
)

type UserService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) *UserService {
	return &UserService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

type RegisterInput struct {
	Username string
	Password string
	Email    string
	Birthday *time.Time
}

type UpdateInput struct {
	Username string
	Password string
	Email    string
	Birthday *time.Time
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err == nil && existing != nil {
		return nil, ErrUsernameExists
	}
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:       input.Username,
		PasswordHash:   string(hash),
		Email:          input.Email,
		Birthday:       input.Birthday,
		FavoriteMovies: []bson.ObjectID{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index decides races the pre-check could not see.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) Update(ctx context.Context, username string, input UpdateInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Update(ctx, username, domain.UserUpdate{
		Username:     input.Username,
		PasswordHash: string(hash),
		Email:        input.Email,
		Birthday:     input.Birthday,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) AddFavorite(ctx context.Context, username, movieID string) (*domain.User, error) {
	id, err := bson.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, ErrInvalidMovieID
	}
	user, err := s.userRepo.AddFavorite(ctx, username, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) RemoveFavorite(ctx context.Context, username, movieID string) (*domain.User, error) {
	id, err := bson.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, ErrInvalidMovieID
	}
	user, err := s.userRepo.RemoveFavorite(ctx, username, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	if err := s.userRepo.Delete(ctx, username); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}
