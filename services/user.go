package services

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Balaji-Kanagarasu/Library-BE/models"
)

// CreateUser inserts a new user. Uniqueness is not enforced on any field
// beyond the generated id.
func CreateUser(ctx context.Context, store UserStore, req models.UserRequest) *models.Response {
	resp := models.NewErrorResponse(ErrCreatingUser)

	user := models.User{
		Name:      req.Name,
		UserName:  req.UserName,
		ContactNo: req.ContactNo,
		EmailID:   req.EmailID,
	}

	saved, err := store.InsertOne(ctx, user)
	if err != nil {
		mapError("createUser", err, resp, NoUserFound)
		return resp
	}

	resp.StatusCode = http.StatusOK
	resp.Status = models.StatusSuccess
	resp.Message = UserCreated
	resp.Data = saved
	return resp
}

// GetUsers fetches one user by id or all users matching the supplied
// filter fields. No filters at all returns the whole collection.
func GetUsers(ctx context.Context, store UserStore, req models.UserRequest) *models.Response {
	resp := models.NewErrorResponse(ErrGettingUsers)

	if req.ID != "" {
		id, err := primitive.ObjectIDFromHex(req.ID)
		if err != nil {
			mapError("getUsers", err, resp, NoUserFound)
			return resp
		}
		user, err := store.FindByID(ctx, id)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			mapError("getUsers", err, resp, NoUserFound)
			return resp
		}
		resp.StatusCode = http.StatusOK
		resp.Status = models.StatusSuccess
		if user != nil {
			resp.Message = UserFound
			resp.Data = user
		} else {
			resp.Message = NoUserFound
		}
		return resp
	}

	filter := bson.M{}
	if req.Name != "" {
		filter["name"] = req.Name
	}
	if req.UserName != "" {
		filter["userName"] = req.UserName
	}
	if req.ContactNo != "" {
		filter["contactNo"] = req.ContactNo
	}
	if req.EmailID != "" {
		filter["emailId"] = req.EmailID
	}

	users, err := store.Find(ctx, filter)
	if err != nil {
		mapError("getUsers", err, resp, NoUserFound)
		return resp
	}

	resp.StatusCode = http.StatusOK
	resp.Status = models.StatusSuccess
	if len(users) > 0 {
		resp.Message = UserFound
		resp.Data = users
	} else {
		resp.Message = NoUserFound
	}
	return resp
}

// UpdateUser applies the fields present in req to the stored user and
// returns the updated record.
func UpdateUser(ctx context.Context, store UserStore, req models.UserRequest) *models.Response {
	resp := models.NewErrorResponse(ErrUpdatingUser)

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		mapError("updateUser", err, resp, NoUserFound)
		return resp
	}

	update := bson.M{}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.UserName != "" {
		update["userName"] = req.UserName
	}
	if req.ContactNo != "" {
		update["contactNo"] = req.ContactNo
	}
	if req.EmailID != "" {
		update["emailId"] = req.EmailID
	}

	var user *models.User
	if len(update) > 0 {
		user, err = store.FindOneAndUpdate(ctx, id, bson.M{"$set": update})
	} else {
		user, err = store.FindByID(ctx, id)
	}
	if err != nil {
		mapError("updateUser", err, resp, NoUserFound)
		return resp
	}

	resp.StatusCode = http.StatusOK
	resp.Status = models.StatusSuccess
	resp.Message = UserUpdated
	resp.Data = user
	return resp
}

// DeleteUser removes the user with the given id. Existing transactions
// referencing the user are left as they are.
func DeleteUser(ctx context.Context, store UserStore, id string) *models.Response {
	resp := models.NewErrorResponse(ErrDeletingUser)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		mapError("deleteUser", err, resp, NoUserFound)
		return resp
	}

	if _, err := store.FindOneAndDelete(ctx, oid); err != nil {
		mapError("deleteUser", err, resp, NoUserFound)
		return resp
	}

	resp.StatusCode = http.StatusOK
	resp.Status = models.StatusSuccess
	resp.Message = UserDeleted
	return resp
}
