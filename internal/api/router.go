package api

import (
	"net/http"

	"github.com/evandanowitz/movie-api/internal/api/handlers"
	"github.com/evandanowitz/movie-api/internal/api/middleware"
	"github.com/evandanowitz/movie-api/internal/config"
	"github.com/evandanowitz/movie-api/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func NewRouter(services *service.Services, cfg *config.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	authHandler := handlers.NewAuthHandler(services.Auth, logger)
	userHandler := handlers.NewUserHandler(services.User, logger)
	movieHandler := handlers.NewMovieHandler(services.Movie, logger)

	// Public routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to myFlix!"))
	})
	r.Post("/login", authHandler.Login)
	r.Post("/users", userHandler.Register)

	// Everything else requires a valid bearer token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth, logger))

		r.Get("/movies", movieHandler.List)
		r.Get("/movies/{title}", movieHandler.GetByTitle)
		r.Get("/genres/{name}", movieHandler.GetGenre)
		r.Get("/directors/{name}", movieHandler.GetDirector)

		r.Get("/users", userHandler.List)
		r.Get("/users/{username}", userHandler.Get)
		r.Put("/users/{username}", userHandler.Update)
		r.Delete("/users/{username}", userHandler.Delete)
		r.Post("/users/{username}/movies/{movieID}", userHandler.AddFavorite)
		r.Delete("/users/{username}/movies/{movieID}", userHandler.RemoveFavorite)
	})

	return r
}
