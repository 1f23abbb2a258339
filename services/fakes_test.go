package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Balaji-Kanagarasu/Library-BE/models"
)

// In-memory stands-ins for the Mongo-backed stores. Setting failWith makes
// every call fail with that error, for exercising the store-failure paths.

type fakeTransactionStore struct {
	txns     []models.Transaction
	failWith error
}

func txnMatches(txn models.Transaction, filter bson.M) bool {
	for key, value := range filter {
		switch key {
		case "_id":
			if txn.ID != value.(primitive.ObjectID) {
				return false
			}
		case "bookId":
			if txn.BookID != value.(primitive.ObjectID) {
				return false
			}
		case "userId":
			if txn.UserID != value.(primitive.ObjectID) {
				return false
			}
		case "dueDate":
			if !txn.DueDate.Equal(value.(time.Time)) {
				return false
			}
		case "transactionType":
			if txn.TransactionType != value.(models.TransactionType) {
				return false
			}
		}
	}
	return true
}

func (f *fakeTransactionStore) FindOne(_ context.Context, filter bson.M) (*models.Transaction, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.txns {
		if txnMatches(f.txns[i], filter) {
			txn := f.txns[i]
			return &txn, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeTransactionStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	return f.FindOne(ctx, bson.M{"_id": id})
}

func (f *fakeTransactionStore) Find(_ context.Context, filter bson.M) ([]models.Transaction, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var matches []models.Transaction
	for i := range f.txns {
		if txnMatches(f.txns[i], filter) {
			matches = append(matches, f.txns[i])
		}
	}
	return matches, nil
}

func (f *fakeTransactionStore) InsertOne(_ context.Context, txn models.Transaction) (*models.Transaction, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	txn.ID = primitive.NewObjectID()
	f.txns = append(f.txns, txn)
	return &txn, nil
}

func (f *fakeTransactionStore) FindOneAndUpdate(_ context.Context, id primitive.ObjectID, update bson.M) (*models.Transaction, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	set, _ := update["$set"].(bson.M)
	for i := range f.txns {
		if f.txns[i].ID != id {
			continue
		}
		for key, value := range set {
			switch key {
			case "bookId":
				f.txns[i].BookID = value.(primitive.ObjectID)
			case "userId":
				f.txns[i].UserID = value.(primitive.ObjectID)
			case "dueDate":
				f.txns[i].DueDate = value.(time.Time)
			case "transactionType":
				f.txns[i].TransactionType = value.(models.TransactionType)
			}
		}
		txn := f.txns[i]
		return &txn, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeTransactionStore) FindOneAndDelete(_ context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.txns {
		if f.txns[i].ID == id {
			txn := f.txns[i]
			f.txns = append(f.txns[:i], f.txns[i+1:]...)
			return &txn, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type fakeUserStore struct {
	users    []models.User
	failWith error
}

func userMatches(user models.User, filter bson.M) bool {
	for key, value := range filter {
		switch key {
		case "_id":
			if user.ID != value.(primitive.ObjectID) {
				return false
			}
		case "name":
			if user.Name != value.(string) {
				return false
			}
		case "userName":
			if user.UserName != value.(string) {
				return false
			}
		case "contactNo":
			if user.ContactNo != value.(string) {
				return false
			}
		case "emailId":
			if user.EmailID != value.(string) {
				return false
			}
		}
	}
	return true
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.users {
		if f.users[i].ID == id {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserStore) Find(_ context.Context, filter bson.M) ([]models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var matches []models.User
	for i := range f.users {
		if userMatches(f.users[i], filter) {
			matches = append(matches, f.users[i])
		}
	}
	return matches, nil
}

func (f *fakeUserStore) InsertOne(_ context.Context, user models.User) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return &user, nil
}

func (f *fakeUserStore) FindOneAndUpdate(_ context.Context, id primitive.ObjectID, update bson.M) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	set, _ := update["$set"].(bson.M)
	for i := range f.users {
		if f.users[i].ID != id {
			continue
		}
		for key, value := range set {
			switch key {
			case "name":
				f.users[i].Name = value.(string)
			case "userName":
				f.users[i].UserName = value.(string)
			case "contactNo":
				f.users[i].ContactNo = value.(string)
			case "emailId":
				f.users[i].EmailID = value.(string)
			}
		}
		user := f.users[i]
		return &user, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserStore) FindOneAndDelete(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.users {
		if f.users[i].ID == id {
			user := f.users[i]
			f.users = append(f.users[:i], f.users[i+1:]...)
			return &user, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type fakeBookStore struct {
	books    []models.Book
	failWith error
}

func bookMatches(book models.Book, filter bson.M) bool {
	for key, value := range filter {
		switch key {
		case "_id":
			if book.ID != value.(primitive.ObjectID) {
				return false
			}
		case "name":
			if book.Name != value.(string) {
				return false
			}
		case "author":
			if book.Author != value.(string) {
				return false
			}
		case "currentStatus":
			if book.CurrentStatus != value.(string) {
				return false
			}
		}
	}
	return true
}

func (f *fakeBookStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Book, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.books {
		if f.books[i].ID == id {
			book := f.books[i]
			return &book, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBookStore) Find(_ context.Context, filter bson.M) ([]models.Book, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var matches []models.Book
	for i := range f.books {
		if bookMatches(f.books[i], filter) {
			matches = append(matches, f.books[i])
		}
	}
	return matches, nil
}

func (f *fakeBookStore) InsertOne(_ context.Context, book models.Book) (*models.Book, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	book.ID = primitive.NewObjectID()
	f.books = append(f.books, book)
	return &book, nil
}

func (f *fakeBookStore) FindOneAndUpdate(_ context.Context, id primitive.ObjectID, update bson.M) (*models.Book, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	set, _ := update["$set"].(bson.M)
	for i := range f.books {
		if f.books[i].ID != id {
			continue
		}
		for key, value := range set {
			switch key {
			case "name":
				f.books[i].Name = value.(string)
			case "author":
				f.books[i].Author = value.(string)
			case "currentStatus":
				f.books[i].CurrentStatus = value.(string)
			}
		}
		book := f.books[i]
		return &book, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBookStore) FindOneAndDelete(_ context.Context, id primitive.ObjectID) (*models.Book, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.books {
		if f.books[i].ID == id {
			book := f.books[i]
			f.books = append(f.books[:i], f.books[i+1:]...)
			return &book, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
