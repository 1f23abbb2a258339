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

// CreateBook inserts a new book into the catalog.
func CreateBook(ctx context.Context, store BookStore, req models.BookRequest) *models.Response {
	resp := models.NewErrorResponse(ErrCreatingBook)

	book := models.Book{
		Name:          req.Name,
		Author:        req.Author,
		CurrentStatus: req.CurrentStatus,
	}

	saved, err := store.InsertOne(ctx, book)
	if err != nil {
		mapError("createBook", err, resp, NoBookFound)
		return resp
	}

	resp.StatusCode = http.StatusOK
	resp.Status = models.StatusSuccess
	resp.Message = BookCreated
	resp.Data = saved
	return resp
}

// GetBooks fetches one book by id or all books matching the supplied
// filter fields.
func GetBooks(ctx context.Context, store BookStore, req models.BookRequest) *models.Response {
	resp := models.NewErrorResponse(ErrGettingBooks)

	if req.ID != "" {
		id, err := primitive.ObjectIDFromHex(req.ID)
		if err != nil {
			mapError("getBooks", err, resp, NoBookFound)
			return resp
		}
		book, err := store.FindByID(ctx, id)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			mapError("getBooks", err, resp, NoBookFound)
			return resp
		}
		resp.StatusCode = http.StatusOK
		resp.Status = models.StatusSuccess
		if book != nil {
			resp.Message = BookFound
			resp.Data = book
		} else {
			resp.Message = NoBookFound
		}
		return resp
	}

	filter := bson.M{}
	if req.Name != "" {
		filter["name"] = req.Name
	}
	if req.Author != "" {
		filter["author"] = req.Author
	}
	if req.CurrentStatus != "" {
		filter["currentStatus"] = req.CurrentStatus
	}

	books, err := store.Find(ctx, filter)
	if err != nil {
		mapError("getBooks", err, resp, NoBookFound)
		return resp
	}

	resp.StatusCode = http.StatusOK
	resp.Status = models.StatusSuccess
	if len(books) > 0 {
		resp.Message = BookFound
		resp.Data = books
	} else {
		resp.Message = NoBookFound
	}
	return resp
}

// UpdateBook applies the fields present in req to the stored book and
// returns the updated record.
func UpdateBook(ctx context.Context, store BookStore, req models.BookRequest) *models.Response {
	resp := models.NewErrorResponse(ErrUpdatingBook)

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		mapError("updateBook", err, resp, NoBookFound)
		return resp
	}

	update := bson.M{}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Author != "" {
		update["author"] = req.Author
	}
	if req.CurrentStatus != "" {
		update["currentStatus"] = req.CurrentStatus
	}

	var book *models.Book
	if len(update) > 0 {
		book, err = store.FindOneAndUpdate(ctx, id, bson.M{"$set": update})
	} else {
		book, err = store.FindByID(ctx, id)
	}
	if err != nil {
		mapError("updateBook", err, resp, NoBookFound)
		return resp
	}

	resp.StatusCode = http.StatusOK
	resp.Status = models.StatusSuccess
	resp.Message = BookUpdated
	resp.Data = book
	return resp
}

// DeleteBook removes the book with the given id. Existing transactions
// referencing the book are left as they are.
func DeleteBook(ctx context.Context, store BookStore, id string) *models.Response {
	resp := models.NewErrorResponse(ErrDeletingBook)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		mapError("deleteBook", err, resp, NoBookFound)
		return resp
	}

	if _, err := store.FindOneAndDelete(ctx, oid); err != nil {
		mapError("deleteBook", err, resp, NoBookFound)
		return resp
	}

	resp.StatusCode = http.StatusOK
	resp.Status = models.StatusSuccess
	resp.Message = BookDeleted
	return resp
}
