// User account HTTP handlers.
//
// This file exposes REST endpoints for account management:
//   - GET    /users       (list accounts)
//   - POST   /users       (provision with explicit role, admin only)
//   - DELETE /users/{id}  (remove, admin only)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateUserRequest is the JSON payload for admin user provisioning.
type CreateUserRequest struct {
	Email       string `json:"email" binding:"required" example:"eva@example.com"`
	Password    string `json:"password" binding:"required" example:"hunter2hunter2"`
	DisplayName string `json:"display_name" binding:"required" example:"Eva Luator"`
	Role        string `json:"role" binding:"required" example:"evaluator"`
}

// ListUsers godoc
// @ID          listUsers
// @Summary     List user accounts
// @Description Returns all live accounts sorted by display name. Password hashes are never serialized.
// @Tags        Users
// @Produce     json
// @Success     200  {array}   domain.UserAccount
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	items, err := h.accountSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// CreateUser godoc
// @ID          createUser
// @Summary     Provision a user account
// @Description Creates an account with an explicit role (admin, evaluator, or agent). Admin only.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateUserRequest  true  "Account payload"
// @Success     201  {object}  domain.UserAccount
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     403  {object}  handlers.ErrorResponse  "Forbidden"
// @Failure     409  {object}  handlers.ErrorResponse  "Email already in use"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users [post]
func (h *Handlers) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email, password, display_name, and role required")
		return
	}
	acct, err := h.accountSvc.Create(c.Request.Context(), actor(c), req.Email, req.Password, req.DisplayName, req.Role)
	if err != nil {
		failService(c, err, ErrCodeCreateFailed)
		return
	}
	ok(c, http.StatusCreated, acct)
}

// DeleteUser godoc
// @ID          deleteUser
// @Summary     Remove a user account
// @Description Removes an account. Records it created remain. Admin only.
// @Tags        Users
// @Param       id  path  string  true  "User ID (UUID)"  format(uuid)
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     403  {object}  handlers.ErrorResponse  "Forbidden"
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Router      /users/{id} [delete]
func (h *Handlers) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user id must be a UUID")
		return
	}
	if err := h.accountSvc.Delete(c.Request.Context(), actor(c), id); err != nil {
		failService(c, err, ErrCodeInternal)
		return
	}
	noContent(c)
}
