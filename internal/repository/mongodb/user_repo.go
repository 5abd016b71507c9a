package mongodb

import (
	"context"

	"github.com/evandanowitz/movie-api/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *userRepository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []bson.ObjectID{}
	}
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	var user domain.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var users []*domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, username string, update domain.UserUpdate) (*domain.User, error) {
	return r.findOneAndUpdate(ctx, username, bson.M{"$set": update})
}

func (r *userRepository) AddFavorite(ctx context.Context, username string, movieID bson.ObjectID) (*domain.User, error) {
	return r.findOneAndUpdate(ctx, username, bson.M{"$push": bson.M{"favoriteMovies": movieID}})
}

func (r *userRepository) RemoveFavorite(ctx context.Context, username string, movieID bson.ObjectID) (*domain.User, error) {
	return r.findOneAndUpdate(ctx, username, bson.M{"$pull": bson.M{"favoriteMovies": movieID}})
}

func (r *userRepository) findOneAndUpdate(ctx context.Context, username string, update bson.M) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"username": username},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Delete(ctx context.Context, username string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
