package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionType marks a transaction as a borrow or a return.
type TransactionType string

const (
	TypeBorrowed TransactionType = "BORROWED"
	TypeReturned TransactionType = "RETURNED"
)

// Transaction links a user and a book with a due date. The referenced ids
// are format-checked only; there is no foreign-key enforcement against the
// users or books collections.
type Transaction struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BookID          primitive.ObjectID `bson:"bookId" json:"bookId"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	DueDate         time.Time          `bson:"dueDate" json:"dueDate"`
	TransactionType TransactionType    `bson:"transactionType,omitempty" json:"transactionType,omitempty"`
}

// TransactionRequest is the request body shape shared by the transaction
// endpoints (create, read filters, and partial update). Empty fields are
// treated as absent.
type TransactionRequest struct {
	ID              string `json:"id,omitempty"`
	BookID          string `json:"bookId,omitempty"`
	UserID          string `json:"userId,omitempty"`
	DueDate         string `json:"dueDate,omitempty"`
	TransactionType string `json:"transactionType,omitempty"`
}
