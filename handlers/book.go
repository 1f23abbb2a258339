package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Balaji-Kanagarasu/Library-BE/models"
	"github.com/Balaji-Kanagarasu/Library-BE/services"
	"github.com/Balaji-Kanagarasu/Library-BE/validators"
)

// AddBook handles POST /api/addBook.
func (h *Handler) AddBook(c *gin.Context) {
	var req models.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if ferr := validators.CreateBook(req); ferr != nil {
		badRequest(c, ferr.Error())
		return
	}

	resp := services.CreateBook(c.Request.Context(), h.books, req)
	c.JSON(resp.StatusCode, resp)
}

// GetBooks handles GET /api/books. Filters, including id, come from
// query parameters.
func (h *Handler) GetBooks(c *gin.Context) {
	req := models.BookRequest{
		ID:            c.Query("id"),
		Name:          c.Query("name"),
		Author:        c.Query("author"),
		CurrentStatus: c.Query("currentStatus"),
	}

	resp := services.GetBooks(c.Request.Context(), h.books, req)
	c.JSON(resp.StatusCode, resp)
}

// UpdateBook handles POST /api/updateBook.
func (h *Handler) UpdateBook(c *gin.Context) {
	var req models.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if ferr := validators.UpdateBook(req); ferr != nil {
		badRequest(c, ferr.Error())
		return
	}

	resp := services.UpdateBook(c.Request.Context(), h.books, req)
	c.JSON(resp.StatusCode, resp)
}

// DeleteBook handles DELETE /api/deleteBook?id=.
func (h *Handler) DeleteBook(c *gin.Context) {
	id := c.Query("id")
	if ferr := validators.ID(id); ferr != nil {
		badRequest(c, ferr.Error())
		return
	}

	resp := services.DeleteBook(c.Request.Context(), h.books, id)
	c.JSON(resp.StatusCode, resp)
}
