package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Balaji-Kanagarasu/Library-BE/models"
	"github.com/Balaji-Kanagarasu/Library-BE/services"
	"github.com/Balaji-Kanagarasu/Library-BE/validators"
)

// AddUser handles POST /api/addUser.
func (h *Handler) AddUser(c *gin.Context) {
	var req models.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if ferr := validators.CreateUser(req); ferr != nil {
		badRequest(c, ferr.Error())
		return
	}

	resp := services.CreateUser(c.Request.Context(), h.users, req)
	c.JSON(resp.StatusCode, resp)
}

// GetUsers handles GET /api/users. Filters, including id, come from
// query parameters.
func (h *Handler) GetUsers(c *gin.Context) {
	req := models.UserRequest{
		ID:        c.Query("id"),
		Name:      c.Query("name"),
		UserName:  c.Query("userName"),
		ContactNo: c.Query("contactNo"),
		EmailID:   c.Query("emailId"),
	}

	resp := services.GetUsers(c.Request.Context(), h.users, req)
	c.JSON(resp.StatusCode, resp)
}

// UpdateUser handles POST /api/updateUser.
func (h *Handler) UpdateUser(c *gin.Context) {
	var req models.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if ferr := validators.UpdateUser(req); ferr != nil {
		badRequest(c, ferr.Error())
		return
	}

	resp := services.UpdateUser(c.Request.Context(), h.users, req)
	c.JSON(resp.StatusCode, resp)
}

// DeleteUser handles DELETE /api/deleteUser?id=.
func (h *Handler) DeleteUser(c *gin.Context) {
	id := c.Query("id")
	if ferr := validators.ID(id); ferr != nil {
		badRequest(c, ferr.Error())
		return
	}

	resp := services.DeleteUser(c.Request.Context(), h.users, id)
	c.JSON(resp.StatusCode, resp)
}
