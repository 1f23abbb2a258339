// Package validators checks request input before any service logic runs.
// Each endpoint has a schema struct carrying the rules; a failure comes
// back as a FieldError, never a panic.
package validators

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Balaji-Kanagarasu/Library-BE/models"
)

var validate = newValidator()

var contactNoPattern = regexp.MustCompile(`^[0-9]{10}$`)

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	_ = v.RegisterValidation("contactno", func(fl validator.FieldLevel) bool {
		return contactNoPattern.MatchString(fl.Field().String())
	})

	return v
}

// FieldError reports the first input field that failed validation.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Reason
}

func check(schema any) *FieldError {
	err := validate.Struct(schema)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &FieldError{Field: verrs[0].Field(), Reason: reasonFor(verrs[0])}
	}
	return &FieldError{Field: "input", Reason: "is invalid"}
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "objectid":
		return "must be a valid id"
	case "email":
		return "must be a valid email address"
	case "contactno":
		return "must be a 10 digit number"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "oneof":
		return "must be one of BORROWED or RETURNED"
	}
	return "is invalid"
}

type createUserSchema struct {
	Name      string `json:"name" validate:"required,min=3,max=50"`
	UserName  string `json:"userName" validate:"required,min=3,max=30"`
	ContactNo string `json:"contactNo" validate:"required,contactno"`
	EmailID   string `json:"emailId" validate:"required,email"`
}

type updateUserSchema struct {
	ID        string `json:"id" validate:"required,objectid"`
	Name      string `json:"name" validate:"omitempty,min=3,max=50"`
	UserName  string `json:"userName" validate:"omitempty,min=3,max=30"`
	ContactNo string `json:"contactNo" validate:"omitempty,contactno"`
	EmailID   string `json:"emailId" validate:"omitempty,email"`
}

type createBookSchema struct {
	Name   string `json:"name" validate:"required,min=3,max=50"`
	Author string `json:"author" validate:"required,min=3,max=30"`
}

type updateBookSchema struct {
	ID     string `json:"id" validate:"required,objectid"`
	Name   string `json:"name" validate:"omitempty,min=3,max=50"`
	Author string `json:"author" validate:"omitempty,min=3,max=30"`
}

type createTransactionSchema struct {
	BookID          string `json:"bookId" validate:"required,objectid"`
	UserID          string `json:"userId" validate:"required,objectid"`
	DueDate         string `json:"dueDate" validate:"required,datetime=2006-01-02"`
	TransactionType string `json:"transactionType" validate:"omitempty,oneof=BORROWED RETURNED"`
}

type updateTransactionSchema struct {
	ID              string `json:"id" validate:"required,objectid"`
	BookID          string `json:"bookId" validate:"omitempty,objectid"`
	UserID          string `json:"userId" validate:"omitempty,objectid"`
	DueDate         string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	TransactionType string `json:"transactionType" validate:"omitempty,oneof=BORROWED RETURNED"`
}

type idSchema struct {
	ID string `json:"id" validate:"required,objectid"`
}

func CreateUser(req models.UserRequest) *FieldError {
	return check(createUserSchema{
		Name:      req.Name,
		UserName:  req.UserName,
		ContactNo: req.ContactNo,
		EmailID:   req.EmailID,
	})
}

func UpdateUser(req models.UserRequest) *FieldError {
	return check(updateUserSchema{
		ID:        req.ID,
		Name:      req.Name,
		UserName:  req.UserName,
		ContactNo: req.ContactNo,
		EmailID:   req.EmailID,
	})
}

func CreateBook(req models.BookRequest) *FieldError {
	return check(createBookSchema{
		Name:   req.Name,
		Author: req.Author,
	})
}

func UpdateBook(req models.BookRequest) *FieldError {
	return check(updateBookSchema{
		ID:     req.ID,
		Name:   req.Name,
		Author: req.Author,
	})
}

func CreateTransaction(req models.TransactionRequest) *FieldError {
	return check(createTransactionSchema{
		BookID:          req.BookID,
		UserID:          req.UserID,
		DueDate:         req.DueDate,
		TransactionType: req.TransactionType,
	})
}

func UpdateTransaction(req models.TransactionRequest) *FieldError {
	return check(updateTransactionSchema{
		ID:              req.ID,
		BookID:          req.BookID,
		UserID:          req.UserID,
		DueDate:         req.DueDate,
		TransactionType: req.TransactionType,
	})
}

// ID validates a bare identifier, typically from query parameters.
func ID(id string) *FieldError {
	return check(idSchema{ID: id})
}
