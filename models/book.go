package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Book is a catalog entry in the books collection. CurrentStatus is a
// free-form availability marker and may be empty.
type Book struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Author        string             `bson:"author" json:"author"`
	CurrentStatus string             `bson:"currentStatus,omitempty" json:"currentStatus,omitempty"`
}

// BookRequest is the request body shape shared by the book endpoints.
type BookRequest struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	Author        string `json:"author,omitempty"`
	CurrentStatus string `json:"currentStatus,omitempty"`
}
