package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/Balaji-Kanagarasu/Library-BE/models"
	"github.com/Balaji-Kanagarasu/Library-BE/services"
	"github.com/Balaji-Kanagarasu/Library-BE/validators"
)

// AddTransaction handles POST /api/addTransaction.
func (h *Handler) AddTransaction(c *gin.Context) {
	var req models.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if ferr := validators.CreateTransaction(req); ferr != nil {
		badRequest(c, ferr.Error())
		return
	}

	resp := services.CreateTransaction(c.Request.Context(), h.transactions, req)
	c.JSON(resp.StatusCode, resp)
}

// GetTransactions handles POST /api/transactions. The body is optional;
// an empty one reads the whole collection.
func (h *Handler) GetTransactions(c *gin.Context) {
	var req models.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "invalid request body")
		return
	}

	resp := services.GetTransactions(c.Request.Context(), h.transactions, req)
	c.JSON(resp.StatusCode, resp)
}

// UpdateTransaction handles POST /api/updateTransaction.
func (h *Handler) UpdateTransaction(c *gin.Context) {
	var req models.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if ferr := validators.UpdateTransaction(req); ferr != nil {
		badRequest(c, ferr.Error())
		return
	}

	resp := services.UpdateTransaction(c.Request.Context(), h.transactions, req)
	c.JSON(resp.StatusCode, resp)
}

// DeleteTransaction handles DELETE /api/deleteTransaction?id=.
func (h *Handler) DeleteTransaction(c *gin.Context) {
	id := c.Query("id")
	if ferr := validators.ID(id); ferr != nil {
		badRequest(c, ferr.Error())
		return
	}

	resp := services.DeleteTransaction(c.Request.Context(), h.transactions, id)
	c.JSON(resp.StatusCode, resp)
}
