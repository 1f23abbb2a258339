package services

import (
	"errors"
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Balaji-Kanagarasu/Library-BE/models"
)

// mapError folds a store failure into resp instead of letting it escape.
// Recognized conditions get a specific status; anything else leaves the
// operation's 400 default in place. notFound is the entity-specific
// not-found message.
func mapError(op string, err error, resp *models.Response, notFound string) {
	log.Printf("[ERROR] in %s service: %v", op, err)

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		resp.StatusCode = http.StatusNotFound
		resp.Status = models.StatusError
		resp.Message = notFound
	case mongo.IsDuplicateKeyError(err):
		resp.StatusCode = http.StatusConflict
		resp.Status = models.StatusError
	}
	resp.Data = nil
}
