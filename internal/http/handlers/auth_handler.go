// Authentication HTTP handlers.
//
// This file exposes the public auth endpoints:
//   - POST /auth/signup   (self-service registration, always agent role)
//   - POST /auth/login    (email/password sign-in)
//   - GET  /auth/me       (current identity, requires a bearer token)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/royalvending/go-coaching-backend/internal/domain"
)

//
// DTOs
//

// SignupRequest is the JSON payload for self-service registration.
type SignupRequest struct {
	Email       string `json:"email" binding:"required" example:"sam@example.com"`
	Password    string `json:"password" binding:"required" example:"hunter2hunter2"`
	DisplayName string `json:"display_name" binding:"required" example:"Sam Agent"`
}

// LoginRequest is the JSON payload for sign-in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"sam@example.com"`
	Password string `json:"password" binding:"required" example:"hunter2hunter2"`
}

// AuthResponse carries the signed token alongside the account it names.
type AuthResponse struct {
	Token string              `json:"token"`
	User  *domain.UserAccount `json:"user"`
}

// MeResponse describes the authenticated caller.
type MeResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
}

//
// Handlers
//

// Signup godoc
// @ID          signup
// @Summary     Register a new account
// @Description Creates an agent account and returns a signed token. Elevated roles are granted through user management.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.SignupRequest  true  "Registration payload"
// @Success     201  {object}  handlers.AuthResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Email already in use"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/signup [post]
func (h *Handlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email, password, and display_name required")
		return
	}
	acct, token, err := h.authSvc.SignUp(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		failService(c, err, ErrCodeSignupFailed)
		return
	}
	ok(c, http.StatusCreated, AuthResponse{Token: token, User: acct})
}

// Login godoc
// @ID          login
// @Summary     Sign in
// @Description Verifies an email/password pair and returns a signed token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.LoginRequest  true  "Sign-in payload"
// @Success     200  {object}  handlers.AuthResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email and password required")
		return
	}
	acct, token, err := h.authSvc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failService(c, err, ErrCodeLoginFailed)
		return
	}
	ok(c, http.StatusOK, AuthResponse{Token: token, User: acct})
}

// Me godoc
// @ID          me
// @Summary     Current identity
// @Description Returns the account resolved from the bearer token.
// @Tags        Auth
// @Produce     json
// @Success     200  {object}  handlers.MeResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /auth/me [get]
func (h *Handlers) Me(c *gin.Context) {
	a := actor(c)
	ok(c, http.StatusOK, MeResponse{
		ID:          a.ID,
		Email:       a.Email,
		Role:        a.Role,
		DisplayName: a.DisplayName,
	})
}
