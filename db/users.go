package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Balaji-Kanagarasu/Library-BE/models"
)

// UserStore wraps the users collection.
type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(database *mongo.Database) *UserStore {
	return &UserStore{coll: database.Collection("users")}
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) Find(ctx context.Context, filter bson.M) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserStore) InsertOne(ctx context.Context, user models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindOneAndDelete(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
