package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Balaji-Kanagarasu/Library-BE/models"
)

// dueDateLayout is the wire format for transaction due dates.
const dueDateLayout = "2006-01-02"

// CreateTransaction records a borrow or return request. A transaction with
// the same bookId, userId and dueDate (and transactionType, when one is
// supplied) must not already exist; the lookup and the insert are two
// separate store calls, so concurrent identical requests can still both
// get through.
func CreateTransaction(ctx context.Context, store TransactionStore, req models.TransactionRequest) *models.Response {
	resp := models.NewErrorResponse(ErrCreatingTransaction)

	bookID, err := primitive.ObjectIDFromHex(req.BookID)
	if err != nil {
		mapError("createTransaction", err, resp, NoTransactionFound)
		return resp
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		mapError("createTransaction", err, resp, NoTransactionFound)
		return resp
	}
	dueDate, err := time.Parse(dueDateLayout, req.DueDate)
	if err != nil {
		mapError("createTransaction", err, resp, NoTransactionFound)
		return resp
	}

	filter := bson.M{
		"bookId":  bookID,
		"userId":  userID,
		"dueDate": dueDate,
	}
	if req.TransactionType != "" {
		filter["transactionType"] = models.TransactionType(req.TransactionType)
	}

	existing, err := store.FindOne(ctx, filter)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		mapError("createTransaction", err, resp, NoTransactionFound)
		return resp
	}
	if existing != nil {
		resp.StatusCode = http.StatusConflict
		resp.Message = TransactionAlreadyExists
		return resp
	}

	txn := models.Transaction{
		BookID:  bookID,
		UserID:  userID,
		DueDate: dueDate,
	}
	if req.TransactionType != "" {
		txn.TransactionType = models.TransactionType(req.TransactionType)
	}

	saved, err := store.InsertOne(ctx, txn)
	if err != nil {
		mapError("createTransaction", err, resp, NoTransactionFound)
		return resp
	}

	resp.StatusCode = http.StatusOK
	resp.Status = models.StatusSuccess
	resp.Message = TransactionCreated
	resp.Data = saved
	return resp
}

// GetTransactions fetches a single transaction by id when one is supplied,
// otherwise all transactions matching whichever filter fields are present.
// A query that finds nothing is still a 200; the message tells the caller.
func GetTransactions(ctx context.Context, store TransactionStore, req models.TransactionRequest) *models.Response {
	resp := models.NewErrorResponse(ErrGettingTransactions)

	if req.ID != "" {
		id, err := primitive.ObjectIDFromHex(req.ID)
		if err != nil {
			mapError("getTransactions", err, resp, NoTransactionFound)
			return resp
		}
		txn, err := store.FindByID(ctx, id)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			mapError("getTransactions", err, resp, NoTransactionFound)
			return resp
		}
		resp.StatusCode = http.StatusOK
		resp.Status = models.StatusSuccess
		if txn != nil {
			resp.Message = TransactionFound
			resp.Data = txn
		} else {
			resp.Message = NoTransactionFound
		}
		return resp
	}

	// Absent fields stay unconstrained; there is no implicit null-matching.
	filter := bson.M{}
	if req.TransactionType != "" {
		filter["transactionType"] = models.TransactionType(req.TransactionType)
	}
	if req.BookID != "" {
		bookID, err := primitive.ObjectIDFromHex(req.BookID)
		if err != nil {
			mapError("getTransactions", err, resp, NoTransactionFound)
			return resp
		}
		filter["bookId"] = bookID
	}
	if req.UserID != "" {
		userID, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			mapError("getTransactions", err, resp, NoTransactionFound)
			return resp
		}
		filter["userId"] = userID
	}
	if req.DueDate != "" {
		dueDate, err := time.Parse(dueDateLayout, req.DueDate)
		if err != nil {
			mapError("getTransactions", err, resp, NoTransactionFound)
			return resp
		}
		filter["dueDate"] = dueDate
	}

	txns, err := store.Find(ctx, filter)
	if err != nil {
		mapError("getTransactions", err, resp, NoTransactionFound)
		return resp
	}

	resp.StatusCode = http.StatusOK
	resp.Status = models.StatusSuccess
	if len(txns) > 0 {
		resp.Message = TransactionFound
		resp.Data = txns
	} else {
		resp.Message = NoTransactionFound
	}
	return resp
}

// UpdateTransaction applies the fields present in req to the transaction
// with req.ID and returns the updated record. Omitted fields are left
// untouched.
func UpdateTransaction(ctx context.Context, store TransactionStore, req models.TransactionRequest) *models.Response {
	resp := models.NewErrorResponse(ErrUpdatingTransaction)

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		mapError("updateTransaction", err, resp, NoTransactionFound)
		return resp
	}

	update := bson.M{}
	if req.BookID != "" {
		bookID, err := primitive.ObjectIDFromHex(req.BookID)
		if err != nil {
			mapError("updateTransaction", err, resp, NoTransactionFound)
			return resp
		}
		update["bookId"] = bookID
	}
	if req.UserID != "" {
		userID, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			mapError("updateTransaction", err, resp, NoTransactionFound)
			return resp
		}
		update["userId"] = userID
	}
	if req.DueDate != "" {
		dueDate, err := time.Parse(dueDateLayout, req.DueDate)
		if err != nil {
			mapError("updateTransaction", err, resp, NoTransactionFound)
			return resp
		}
		update["dueDate"] = dueDate
	}
	if req.TransactionType != "" {
		update["transactionType"] = models.TransactionType(req.TransactionType)
	}

	// Mongo rejects an empty $set, so a body carrying only the id returns
	// the record unchanged.
	var txn *models.Transaction
	if len(update) > 0 {
		txn, err = store.FindOneAndUpdate(ctx, id, bson.M{"$set": update})
	} else {
		txn, err = store.FindByID(ctx, id)
	}
	if err != nil {
		mapError("updateTransaction", err, resp, NoTransactionFound)
		return resp
	}

	resp.StatusCode = http.StatusOK
	resp.Status = models.StatusSuccess
	resp.Message = TransactionUpdated
	resp.Data = txn
	return resp
}

// DeleteTransaction removes the transaction with the given id. Deleting an
// id that no longer exists is a 404, so repeated deletes fail quietly.
func DeleteTransaction(ctx context.Context, store TransactionStore, id string) *models.Response {
	resp := models.NewErrorResponse(ErrDeletingTransaction)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		mapError("deleteTransaction", err, resp, NoTransactionFound)
		return resp
	}

	if _, err := store.FindOneAndDelete(ctx, oid); err != nil {
		mapError("deleteTransaction", err, resp, NoTransactionFound)
		return resp
	}

	resp.StatusCode = http.StatusOK
	resp.Status = models.StatusSuccess
	resp.Message = TransactionDeleted
	return resp
}
