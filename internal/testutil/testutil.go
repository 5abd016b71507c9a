package testutil

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/evandanowitz/movie-api/internal/api"
	"github.com/evandanowitz/movie-api/internal/config"
	"github.com/evandanowitz/movie-api/internal/domain"
	"github.com/evandanowitz/movie-api/internal/repository"
	"github.com/evandanowitz/movie-api/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

// TestConfig returns a config suitable for tests. MinCost keeps bcrypt fast.
func TestConfig() *config.Config {
	return &config.Config{
		Port:           "8080",
		Environment:    "test",
		JWTSecret:      "test-jwt-secret",
		JWTExpiration:  168 * time.Hour,
		BcryptCost:     bcrypt.MinCost,
		AllowedOrigins: []string{"http://localhost:8080"},
	}
}

// TestAPI bundles a router over in-memory repositories.
type TestAPI struct {
	Handler  http.Handler
	Users    *FakeUserRepository
	Movies   *FakeMovieRepository
	Services *service.Services
	Config   *config.Config
}

func NewTestAPI(t *testing.T, movies ...*domain.Movie) *TestAPI {
	t.Helper()

	cfg := TestConfig()
	users := NewFakeUserRepository()
	movieRepo := NewFakeMovieRepository(movies...)
	repos := &repository.Repositories{User: users, Movie: movieRepo}
	services := service.NewServices(repos, cfg)

	return &TestAPI{
		Handler:  api.NewRouter(services, cfg, zerolog.Nop()),
		Users:    users,
		Movies:   movieRepo,
		Services: services,
		Config:   cfg,
	}
}

// UserBuilder creates test users with a builder pattern.
type UserBuilder struct {
	username string
	password string
	email    string
	birthday *time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		username: fmt.Sprintf("user%s", uuid.New().String()[:8]),
		password: "testpassword123",
		email:    "test@example.com",
	}
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithBirthday(birthday time.Time) *UserBuilder {
	b.birthday = &birthday
	return b
}

// Build stores the user and returns it with the raw password.
func (b *UserBuilder) Build(t *testing.T, repo *FakeUserRepository) (*domain.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:             bson.NewObjectID(),
		Username:       b.username,
		PasswordHash:   string(hash),
		Email:          b.email,
		Birthday:       b.birthday,
		FavoriteMovies: []bson.ObjectID{},
	}

	if err := repo.Create(t.Context(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// NewMovie builds a catalog entry for tests.
func NewMovie(title, genre, director string) *domain.Movie {
	return &domain.Movie{
		ID:          bson.NewObjectID(),
		Title:       title,
		Description: "description of " + title,
		Genre:       domain.Genre{Name: genre, Description: genre + " movies"},
		Director:    domain.Director{Name: director, Bio: "bio of " + director},
	}
}
