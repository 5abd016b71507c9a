package testutil

import (
	"context"
	"slices"
	"sync"

	"github.com/evandanowitz/movie-api/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// FakeUserRepository is an in-memory UserRepository. It mimics the store's
// behavior closely enough for service and handler tests: mongo.ErrNoDocuments
// for misses and a duplicate-key write error for username collisions.
// Calls counts every store access so tests can assert that guarded routes
// never touch the store.
type FakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by username
	Calls int
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{users: make(map[string]*domain.User)}
}

func duplicateKeyError() error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	c.FavoriteMovies = slices.Clone(u.FavoriteMovies)
	return &c
}

func (r *FakeUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if _, exists := r.users[user.Username]; exists {
		return duplicateKeyError()
	}
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	r.users[user.Username] = copyUser(user)
	return nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	for _, u := range r.users {
		if u.ID == id {
			return copyUser(u), nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *FakeUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if u, ok := r.users[username]; ok {
		return copyUser(u), nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *FakeUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	users := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, copyUser(u))
	}
	return users, nil
}

func (r *FakeUserRepository) Update(ctx context.Context, username string, update domain.UserUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	u, ok := r.users[username]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if update.Username != username {
		if _, exists := r.users[update.Username]; exists {
			return nil, duplicateKeyError()
		}
		delete(r.users, username)
		r.users[update.Username] = u
	}
	u.Username = update.Username
	u.PasswordHash = update.PasswordHash
	u.Email = update.Email
	u.Birthday = update.Birthday
	return copyUser(u), nil
}

func (r *FakeUserRepository) AddFavorite(ctx context.Context, username string, movieID bson.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	u, ok := r.users[username]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	u.FavoriteMovies = append(u.FavoriteMovies, movieID)
	return copyUser(u), nil
}

func (r *FakeUserRepository) RemoveFavorite(ctx context.Context, username string, movieID bson.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	u, ok := r.users[username]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	u.FavoriteMovies = slices.DeleteFunc(u.FavoriteMovies, func(id bson.ObjectID) bool {
		return id == movieID
	})
	return copyUser(u), nil
}

func (r *FakeUserRepository) Delete(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if _, ok := r.users[username]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.users, username)
	return nil
}

// FakeMovieRepository is an in-memory MovieRepository.
type FakeMovieRepository struct {
	mu     sync.Mutex
	movies []*domain.Movie
}

func NewFakeMovieRepository(movies ...*domain.Movie) *FakeMovieRepository {
	return &FakeMovieRepository{movies: movies}
}

func (r *FakeMovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.movies), nil
}

func (r *FakeMovieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return r.find(func(m *domain.Movie) bool { return m.Title == title })
}

func (r *FakeMovieRepository) GetByGenreName(ctx context.Context, name string) (*domain.Movie, error) {
	return r.find(func(m *domain.Movie) bool { return m.Genre.Name == name })
}

func (r *FakeMovieRepository) GetByDirectorName(ctx context.Context, name string) (*domain.Movie, error) {
	return r.find(func(m *domain.Movie) bool { return m.Director.Name == name })
}

func (r *FakeMovieRepository) find(match func(*domain.Movie) bool) (*domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.movies {
		if match(m) {
			return m, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
