package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Balaji-Kanagarasu/Library-BE/models"
)

// TransactionStore wraps the transactions collection with the single-document
// operations the transaction service needs.
type TransactionStore struct {
	coll *mongo.Collection
}

func NewTransactionStore(database *mongo.Database) *TransactionStore {
	return &TransactionStore{coll: database.Collection("transactions")}
}

// FindOne returns the first transaction matching filter, or
// mongo.ErrNoDocuments when nothing matches.
func (s *TransactionStore) FindOne(ctx context.Context, filter bson.M) (*models.Transaction, error) {
	var txn models.Transaction
	if err := s.coll.FindOne(ctx, filter).Decode(&txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (s *TransactionStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	return s.FindOne(ctx, bson.M{"_id": id})
}

func (s *TransactionStore) Find(ctx context.Context, filter bson.M) ([]models.Transaction, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var txns []models.Transaction
	if err := cursor.All(ctx, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// InsertOne persists txn under a freshly generated id and returns the
// stored document.
func (s *TransactionStore) InsertOne(ctx context.Context, txn models.Transaction) (*models.Transaction, error) {
	txn.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// FindOneAndUpdate applies update to the transaction with the given id and
// returns the post-update document.
func (s *TransactionStore) FindOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Transaction, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var txn models.Transaction
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (s *TransactionStore) FindOneAndDelete(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	var txn models.Transaction
	if err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&txn); err != nil {
		return nil, err
	}
	return &txn, nil
}
