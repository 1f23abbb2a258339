package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Balaji-Kanagarasu/Library-BE/models"
)

// The store interfaces describe the persistence surface each service
// depends on. The db package satisfies them against real MongoDB
// collections; tests substitute in-memory fakes. Lookups that miss report
// mongo.ErrNoDocuments, matching the driver.

type UserStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Find(ctx context.Context, filter bson.M) ([]models.User, error)
	InsertOne(ctx context.Context, user models.User) (*models.User, error)
	FindOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error)
	FindOneAndDelete(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type BookStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error)
	Find(ctx context.Context, filter bson.M) ([]models.Book, error)
	InsertOne(ctx context.Context, book models.Book) (*models.Book, error)
	FindOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Book, error)
	FindOneAndDelete(ctx context.Context, id primitive.ObjectID) (*models.Book, error)
}

type TransactionStore interface {
	FindOne(ctx context.Context, filter bson.M) (*models.Transaction, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error)
	Find(ctx context.Context, filter bson.M) ([]models.Transaction, error)
	InsertOne(ctx context.Context, txn models.Transaction) (*models.Transaction, error)
	FindOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Transaction, error)
	FindOneAndDelete(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error)
}
