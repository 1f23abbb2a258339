package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a library member document in the users collection.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	UserName  string             `bson:"userName" json:"userName"`
	ContactNo string             `bson:"contactNo" json:"contactNo"`
	EmailID   string             `bson:"emailId" json:"emailId"`
}

// UserRequest is the request body shape shared by the user endpoints.
// Empty fields are treated as absent.
type UserRequest struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	UserName  string `json:"userName,omitempty"`
	ContactNo string `json:"contactNo,omitempty"`
	EmailID   string `json:"emailId,omitempty"`
}
