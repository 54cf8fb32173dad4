// Team member HTTP handlers.
//
// This file exposes REST endpoints for the roster:
//   - POST   /members       (create, admin only)
//   - GET    /members       (list, sorted by name)
//   - GET    /members/{id}  (fetch one)
//   - DELETE /members/{id}  (remove, admin only; history is untouched)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateMemberRequest is the JSON payload for adding a roster member.
type CreateMemberRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255" example:"Jane Doe"`
}

// CreateMember godoc
// @ID          createMember
// @Summary     Add a team member
// @Description Adds a member to the roster. Admin only.
// @Tags        Members
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateMemberRequest  true  "Member payload"
// @Success     201  {object}  domain.Member
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     403  {object}  handlers.ErrorResponse  "Forbidden"
// @Failure     409  {object}  handlers.ErrorResponse  "Name already exists"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /members [post]
func (h *Handlers) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name required")
		return
	}
	m, err := h.memberSvc.Create(c.Request.Context(), actor(c), req.Name)
	if err != nil {
		failService(c, err, ErrCodeCreateFailed)
		return
	}
	ok(c, http.StatusCreated, m)
}

// ListMembers godoc
// @ID          listMembers
// @Summary     List team members
// @Description Returns all live roster members sorted by name.
// @Tags        Members
// @Produce     json
// @Success     200  {array}   domain.Member
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /members [get]
func (h *Handlers) ListMembers(c *gin.Context) {
	items, err := h.memberSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// GetMember godoc
// @ID          getMember
// @Summary     Fetch a team member
// @Description Returns a single roster member by ID.
// @Tags        Members
// @Produce     json
// @Param       id  path  string  true  "Member ID (UUID)"  format(uuid)
// @Success     200  {object}  domain.Member
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Member not found"
// @Router      /members/{id} [get]
func (h *Handlers) GetMember(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "member id must be a UUID")
		return
	}
	m, err := h.memberSvc.Get(c.Request.Context(), id)
	if err != nil {
		failService(c, err, ErrCodeInternal)
		return
	}
	ok(c, http.StatusOK, m)
}

// DeleteMember godoc
// @ID          deleteMember
// @Summary     Remove a team member
// @Description Removes a member from the roster. Existing evaluations and coaching logs keep the name. Admin only.
// @Tags        Members
// @Param       id  path  string  true  "Member ID (UUID)"  format(uuid)
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     403  {object}  handlers.ErrorResponse  "Forbidden"
// @Failure     404  {object}  handlers.ErrorResponse  "Member not found"
// @Router      /members/{id} [delete]
func (h *Handlers) DeleteMember(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "member id must be a UUID")
		return
	}
	if err := h.memberSvc.Delete(c.Request.Context(), actor(c), id); err != nil {
		failService(c, err, ErrCodeInternal)
		return
	}
	noContent(c)
}
