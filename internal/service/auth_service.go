package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evandanowitz/movie-api/internal/config"
	"github.com/evandanowitz/movie-api/internal/domain"
	"github.com/evandanowitz/movie-api/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong password
	// so the login response cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrCorruptedHash      = errors.New("stored password hash is malformed")
)

// Claims is the token payload: the registered claims plus an identity
// snapshot taken at issuance. The snapshot is a cache hint only; token
// authentication always re-fetches the live user record by id.
type Claims struct {
	UserID         string     `json:"_id"`
	Username       string     `json:"Username"`
	Email          string     `json:"Email"`
	Birthday       *time.Time `json:"Birthday,omitempty"`
	FavoriteMovies []string   `json:"FavoriteMovies,omitempty"`
	jwt.RegisteredClaims
}

type AuthService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type AuthResult struct {
	User  *domain.User
	Token string
}

// Login verifies a username/password pair against the credential store and
// issues a bearer token for the authenticated identity.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		// Anything else means the stored digest itself is unreadable.
		return nil, fmt.Errorf("%w: %w", ErrCorruptedHash, err)
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

// IssueToken signs a 7-day HS256 token whose subject is the username and
// whose payload embeds the identity snapshot.
func (s *AuthService) IssueToken(user *domain.User) (string, error) {
	now := time.Now()

	favorites := make([]string, 0, len(user.FavoriteMovies))
	for _, id := range user.FavoriteMovies {
		favorites = append(favorites, id.Hex())
	}

	claims := Claims{
		UserID:         user.ID.Hex(),
		Username:       user.Username,
		Email:          user.Email,
		Birthday:       user.Birthday,
		FavoriteMovies: favorites,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// AuthenticateToken verifies a bearer token's signature and expiry, then
// resolves the current identity from the credential store. A user deleted
// after issuance fails authentication even with a valid signature.
func (s *AuthService) AuthenticateToken(ctx context.Context, tokenString string) (*domain.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	id, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}
