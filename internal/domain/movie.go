package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Movie struct {
	ID          bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string        `json:"Title" bson:"title"`
	Description string        `json:"Description" bson:"description"`
	Genre       Genre         `json:"Genre" bson:"genre"`
	Director    Director      `json:"Director" bson:"director"`
	ImagePath   string        `json:"ImagePath,omitempty" bson:"imagePath,omitempty"`
	Featured    bool          `json:"Featured" bson:"featured"`
}

type Genre struct {
	Name        string `json:"Name" bson:"name"`
	Description string `json:"Description" bson:"description"`
}

type Director struct {
	Name  string     `json:"Name" bson:"name"`
	Bio   string     `json:"Bio" bson:"bio"`
	Birth *time.Time `json:"Birth,omitempty" bson:"birth,omitempty"`
	Death *time.Time `json:"Death,omitempty" bson:"death,omitempty"`
}
