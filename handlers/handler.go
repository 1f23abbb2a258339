package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Balaji-Kanagarasu/Library-BE/models"
	"github.com/Balaji-Kanagarasu/Library-BE/services"
)

// Handler carries the stores the endpoint handlers run against.
type Handler struct {
	users        services.UserStore
	books        services.BookStore
	transactions services.TransactionStore
}

func New(users services.UserStore, books services.BookStore, transactions services.TransactionStore) *Handler {
	return &Handler{
		users:        users,
		books:        books,
		transactions: transactions,
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// badRequest writes a 400 envelope for input that failed before the
// service layer ran.
func badRequest(c *gin.Context, message string) {
	resp := models.NewErrorResponse(message)
	c.JSON(resp.StatusCode, resp)
}
