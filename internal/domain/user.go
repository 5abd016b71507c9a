package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a registered account. Field names on the wire stay capitalized
// for compatibility with existing API clients.
type User struct {
	ID             bson.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Username       string          `json:"Username" bson:"username"`
	PasswordHash   string          `json:"-" bson:"password"`
	Email          string          `json:"Email" bson:"email"`
	Birthday       *time.Time      `json:"Birthday,omitempty" bson:"birthday,omitempty"`
	FavoriteMovies []bson.ObjectID `json:"FavoriteMovies" bson:"favoriteMovies"`
}

// UserUpdate carries the replacement profile fields for an update.
// PasswordHash must already be hashed; the plaintext never reaches the store.
type UserUpdate struct {
	Username     string     `bson:"username"`
	PasswordHash string     `bson:"password"`
	Email        string     `bson:"email"`
	Birthday     *time.Time `bson:"birthday,omitempty"`
}
