package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Balaji-Kanagarasu/Library-BE/models"
)

// BookStore wraps the books collection.
type BookStore struct {
	coll *mongo.Collection
}

func NewBookStore(database *mongo.Database) *BookStore {
	return &BookStore{coll: database.Collection("books")}
}

func (s *BookStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	var book models.Book
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *BookStore) Find(ctx context.Context, filter bson.M) ([]models.Book, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var books []models.Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *BookStore) InsertOne(ctx context.Context, book models.Book) (*models.Book, error) {
	book.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *BookStore) FindOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Book, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var book models.Book
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *BookStore) FindOneAndDelete(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	var book models.Book
	if err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&book); err != nil {
		return nil, err
	}
	return &book, nil
}
