package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/evandanowitz/movie-api/internal/domain"
	"github.com/evandanowitz/movie-api/internal/service"
	"github.com/rs/zerolog"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(authService *service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

type LoginRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

type LoginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type loginFailure struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// Login authenticates a username/password pair and returns the identity with
// a fresh bearer token. Every credential failure produces the same response
// body; only the server-side log records which factor was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.logger.Info().Str("username", req.Username).Msg("login rejected")
			respondJSON(w, http.StatusBadRequest, loginFailure{Message: "Something is not right"})
			return
		}
		h.logger.Error().Err(err).Str("username", req.Username).Msg("login failed")
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{User: result.User, Token: result.Token})
}
