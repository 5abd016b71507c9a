package handlers

import (
	"errors"
	"net/http"

	"github.com/evandanowitz/movie-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type MovieHandler struct {
	movieService *service.MovieService
	logger       zerolog.Logger
}

func NewMovieHandler(movieService *service.MovieService, logger zerolog.Logger) *MovieHandler {
	return &MovieHandler{movieService: movieService, logger: logger}
}

func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.movieService.List(r.Context())
	if err != nil {
		h.internalError(w, err, "listing movies failed")
		return
	}
	respondJSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	movie, err := h.movieService.GetByTitle(r.Context(), chi.URLParam(r, "title"))
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			respondMessage(w, http.StatusNotFound, "Movie not found")
			return
		}
		h.internalError(w, err, "fetching movie failed")
		return
	}
	respondJSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) GetGenre(w http.ResponseWriter, r *http.Request) {
	genre, err := h.movieService.GetGenre(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			respondMessage(w, http.StatusNotFound, "Genre not found")
			return
		}
		h.internalError(w, err, "fetching genre failed")
		return
	}
	respondJSON(w, http.StatusOK, genre)
}

func (h *MovieHandler) GetDirector(w http.ResponseWriter, r *http.Request) {
	director, err := h.movieService.GetDirector(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			respondMessage(w, http.StatusNotFound, "Director not found")
			return
		}
		h.internalError(w, err, "fetching director failed")
		return
	}
	respondJSON(w, http.StatusOK, director)
}

func (h *MovieHandler) internalError(w http.ResponseWriter, err error, msg string) {
	h.logger.Error().Err(err).Msg(msg)
	respondMessage(w, http.StatusInternalServerError, "Internal server error")
}
