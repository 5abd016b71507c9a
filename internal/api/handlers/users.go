package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/evandanowitz/movie-api/internal/api/middleware"
	"github.com/evandanowitz/movie-api/internal/domain"
	"github.com/evandanowitz/movie-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type UserHandler struct {
	userService *service.UserService
	validate    *validator.Validate
	logger      zerolog.Logger
}

func NewUserHandler(userService *service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validator.New(),
		logger:      logger,
	}
}

type UserRequest struct {
	Username string     `json:"Username" validate:"required,min=5,alphanum"`
	Password string     `json:"Password" validate:"required"`
	Email    string     `json:"Email" validate:"required,email"`
	Birthday *time.Time `json:"Birthday,omitempty"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := h.fieldErrors(req); len(errs) > 0 {
		respondJSON(w, http.StatusUnprocessableEntity, validationResponse{Errors: errs})
		return
	}

	user, err := h.userService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: req.Birthday,
	})
	if err != nil {
		if errors.Is(err, service.ErrUsernameExists) {
			respondMessage(w, http.StatusBadRequest, req.Username+" already exists")
			return
		}
		h.internalError(w, err, "registration failed")
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.internalError(w, err, "listing users failed")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondMessage(w, http.StatusNotFound, "User not found")
			return
		}
		h.internalError(w, err, "fetching user failed")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if !h.requireOwnership(w, r, username) {
		return
	}

	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := h.fieldErrors(req); len(errs) > 0 {
		respondJSON(w, http.StatusUnprocessableEntity, validationResponse{Errors: errs})
		return
	}

	user, err := h.userService.Update(r.Context(), username, service.UpdateInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: req.Birthday,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondMessage(w, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrUsernameExists):
			respondMessage(w, http.StatusBadRequest, req.Username+" already exists")
		default:
			h.internalError(w, err, "updating user failed")
		}
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.updateFavorites(w, r, h.userService.AddFavorite)
}

func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.updateFavorites(w, r, h.userService.RemoveFavorite)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if !h.requireOwnership(w, r, username) {
		return
	}

	if err := h.userService.Delete(r.Context(), username); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondMessage(w, http.StatusNotFound, username+" was not found")
			return
		}
		h.internalError(w, err, "deleting user failed")
		return
	}

	respondMessage(w, http.StatusOK, username+" was deleted.")
}

func (h *UserHandler) updateFavorites(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, username, movieID string) (*domain.User, error)) {
	username := chi.URLParam(r, "username")
	if !h.requireOwnership(w, r, username) {
		return
	}

	user, err := op(r.Context(), username, chi.URLParam(r, "movieID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMovieID):
			respondMessage(w, http.StatusBadRequest, "Invalid movie id")
		case errors.Is(err, service.ErrUserNotFound):
			respondMessage(w, http.StatusNotFound, "User not found")
		default:
			h.internalError(w, err, "updating favorites failed")
		}
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// requireOwnership rejects requests acting on another identity's resource.
// It runs before payload validation on purpose.
func (h *UserHandler) requireOwnership(w http.ResponseWriter, r *http.Request, username string) bool {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return false
	}
	if user.Username != username {
		respondMessage(w, http.StatusForbidden, "Permission denied")
		return false
	}
	return true
}

func (h *UserHandler) fieldErrors(req UserRequest) []fieldError {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return []fieldError{{Field: "request", Message: err.Error()}}
	}

	errs := make([]fieldError, 0, len(invalid))
	for _, fe := range invalid {
		errs = append(errs, fieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s requires %s character minimum", fe.Field(), fe.Param())
	case "alphanum":
		return fmt.Sprintf("%s contains non alphanumeric characters - not allowed", fe.Field())
	case "email":
		return fmt.Sprintf("%s does not appear to be valid", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func (h *UserHandler) internalError(w http.ResponseWriter, err error, msg string) {
	h.logger.Error().Err(err).Msg(msg)
	respondMessage(w, http.StatusInternalServerError, "Internal server error")
}
