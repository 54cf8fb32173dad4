// Evaluation criteria HTTP handlers.
//
// This file exposes REST endpoints for the ordered criteria sequence:
//   - GET    /criteria       (list in sequence order)
//   - POST   /criteria       (append at the end, admin only)
//   - DELETE /criteria/{id}  (remove, admin only; stored scores unaffected)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AppendCriterionRequest is the JSON payload for appending a criterion.
type AppendCriterionRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255" example:"Empathy"`
}

// ListCriteria godoc
// @ID          listCriteria
// @Summary     List evaluation criteria
// @Description Returns the criteria sequence in display order.
// @Tags        Criteria
// @Produce     json
// @Success     200  {array}   domain.Criterion
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /criteria [get]
func (h *Handlers) ListCriteria(c *gin.Context) {
	items, err := h.criteriaSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// AppendCriterion godoc
// @ID          appendCriterion
// @Summary     Append a criterion
// @Description Adds a criterion at the end of the sequence. Past evaluations simply have no score for it. Admin only.
// @Tags        Criteria
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.AppendCriterionRequest  true  "Criterion payload"
// @Success     201  {object}  domain.Criterion
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     403  {object}  handlers.ErrorResponse  "Forbidden"
// @Failure     409  {object}  handlers.ErrorResponse  "Name already exists"
// @Router      /criteria [post]
func (h *Handlers) AppendCriterion(c *gin.Context) {
	var req AppendCriterionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name required")
		return
	}
	crit, err := h.criteriaSvc.Append(c.Request.Context(), actor(c), req.Name)
	if err != nil {
		failService(c, err, ErrCodeCreateFailed)
		return
	}
	ok(c, http.StatusCreated, crit)
}

// DeleteCriterion godoc
// @ID          deleteCriterion
// @Summary     Remove a criterion
// @Description Removes a criterion from the sequence. Scores recorded under the name keep counting in reports. Admin only.
// @Tags        Criteria
// @Param       id  path  string  true  "Criterion ID (UUID)"  format(uuid)
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     403  {object}  handlers.ErrorResponse  "Forbidden"
// @Failure     404  {object}  handlers.ErrorResponse  "Criterion not found"
// @Router      /criteria/{id} [delete]
func (h *Handlers) DeleteCriterion(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "criterion id must be a UUID")
		return
	}
	if err := h.criteriaSvc.Remove(c.Request.Context(), actor(c), id); err != nil {
		failService(c, err, ErrCodeInternal)
		return
	}
	noContent(c)
}
