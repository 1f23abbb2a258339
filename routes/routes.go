package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Balaji-Kanagarasu/Library-BE/handlers"
)

// Register wires every API route onto the engine under /api.
func Register(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")

	api.GET("/health", h.Health)

	UserRoutes(api, h)
	BookRoutes(api, h)
	TransactionRoutes(api, h)
}

// UserRoutes registers the user endpoints.
func UserRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	api.POST("/addUser", h.AddUser)
	api.GET("/users", h.GetUsers)
	api.POST("/updateUser", h.UpdateUser)
	api.DELETE("/deleteUser", h.DeleteUser)
}

// BookRoutes registers the book endpoints.
func BookRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	api.POST("/addBook", h.AddBook)
	api.GET("/books", h.GetBooks)
	api.POST("/updateBook", h.UpdateBook)
	api.DELETE("/deleteBook", h.DeleteBook)
}

// TransactionRoutes registers the transaction endpoints. Reads go through
// POST so filters can ride in the body.
func TransactionRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	api.POST("/addTransaction", h.AddTransaction)
	api.POST("/transactions", h.GetTransactions)
	api.POST("/updateTransaction", h.UpdateTransaction)
	api.DELETE("/deleteTransaction", h.DeleteTransaction)
}
