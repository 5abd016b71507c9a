package service

import (
	"github.com/evandanowitz/movie-api/internal/config"
	"github.com/evandanowitz/movie-api/internal/repository"
)

type Services struct {
	Auth  *AuthService
	User  *UserService
	Movie *MovieService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:  NewAuthService(repos.User, cfg),
		User:  NewUserService(repos.User, cfg),
		Movie: NewMovieService(repos.Movie),
	}
}
