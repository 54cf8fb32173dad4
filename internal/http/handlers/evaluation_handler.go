// Evaluation HTTP handlers.
//
// This file exposes REST endpoints for evaluations:
//   - POST /evaluations       (record; idempotent via Idempotency-Key)
//   - GET  /evaluations       (list with filters, weak ETag support)
//   - GET  /evaluations/{id}  (fetch one)
//
// Idempotency: when the client supplies an Idempotency-Key and a previous
// successful submission exists for (user, "evaluations", key), the stored
// evaluation is returned with `Idempotency-Replayed: true` instead of
// inserting a duplicate.
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/royalvending/go-coaching-backend/internal/http/middleware"
	"github.com/royalvending/go-coaching-backend/internal/repo"
	"github.com/royalvending/go-coaching-backend/internal/report"
	"github.com/royalvending/go-coaching-backend/internal/services"
	"github.com/royalvending/go-coaching-backend/internal/utils"
)

//
// DTOs
//

// CreateEvaluationRequest is the JSON payload for recording an evaluation.
// Any client-supplied total is ignored; the server recomputes it.
type CreateEvaluationRequest struct {
	Member    string         `json:"member" binding:"required" example:"Jane Doe"`
	Evaluator string         `json:"evaluator" example:"Eva Luator"`
	Date      string         `json:"date" binding:"required" example:"2026-08-15"`
	Scores    map[string]int `json:"scores" binding:"required"`
	Comments  string         `json:"comments" example:"Great call control"`
}

//
// Helpers
//

// evaluationFilterFromQuery builds the list filter from query parameters.
// Unknown parameters are ignored; malformed score ranges disable that
// criterion rather than erroring.
func evaluationFilterFromQuery(c *gin.Context) report.EvaluationFilter {
	return report.EvaluationFilter{
		Member:     c.Query("member"),
		Evaluator:  c.Query("evaluator"),
		Month:      c.Query("month"),
		ScoreRange: c.Query("score"),
		Search:     c.Query("q"),
	}
}

// evalDB exposes the underlying handle of the concrete evaluation service
// for best-effort concerns (ETag stats, idempotency records).
func (h *Handlers) evalDB() *gorm.DB {
	if svc, ok := h.evalSvc.(*services.EvaluationService); ok {
		return svc.DB
	}
	return nil
}

//
// Handlers
//

// CreateEvaluation godoc
// @ID          createEvaluation
// @Summary     Record an evaluation
// @Description Validates scores against the current criteria, computes the total server-side, and stores the record immutably.
// @Description Supports idempotency via the Idempotency-Key header (same key → same record).
// @Tags        Evaluations
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header  string  false  "Idempotency key for safe retries (UUID recommended)"
// @Param       body  body  handlers.CreateEvaluationRequest  true  "Evaluation payload"
// @Success     201  {object}  domain.Evaluation
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /evaluations [post]
func (h *Handlers) CreateEvaluation(c *gin.Context) {
	ctx := c.Request.Context()
	a := actor(c)

	var req CreateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "member, date, and scores required")
		return
	}

	// Idempotency (replay path).
	idemKey, _ := middleware.GetIdempotencyKey(c)
	if idemKey != "" {
		if db := h.evalDB(); db != nil {
			if rec, err := repo.GetIdempotency(ctx, db, a.ID, "evaluations", idemKey, time.Now().UTC()); err == nil && rec != nil {
				if prev, err2 := repo.GetEvaluation(ctx, db, rec.RecordID); err2 == nil {
					c.Header("Idempotency-Replayed", "true")
					ok(c, http.StatusOK, prev)
					return
				}
			}
		}
	}

	e, err := h.evalSvc.Create(ctx, a, services.EvaluationInput{
		Member:    req.Member,
		Evaluator: req.Evaluator,
		Date:      req.Date,
		Scores:    req.Scores,
		Comments:  req.Comments,
	})
	if err != nil {
		failService(c, err, ErrCodeCreateFailed)
		return
	}

	// Idempotency (store path), best effort.
	if idemKey != "" {
		if db := h.evalDB(); db != nil {
			_, _ = repo.CreateIdempotency(ctx, db, a.ID, "evaluations", idemKey, e.ID, http.StatusCreated, h.idemTTL)
		}
	}

	ok(c, http.StatusCreated, e)
}

// ListEvaluations godoc
// @ID          listEvaluations
// @Summary     List evaluations
// @Description Returns evaluations most-recently-added first. Filters combine with AND. Supports weak ETag via If-None-Match.
// @Tags        Evaluations
// @Produce     json
// @Param       member     query  string  false  "Exact member name"
// @Param       evaluator  query  string  false  "Exact evaluator name"
// @Param       month      query  string  false  "Month key YYYY-MM"
// @Param       score      query  string  false  "Total range min-max, e.g. 3-4"
// @Param       q          query  string  false  "Case-insensitive text search"
// @Param       limit      query  int     false  "Cap the number of returned records"
// @Success     200  {array}   domain.Evaluation
// @Success     304  {string}  string  "Not Modified"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /evaluations [get]
func (h *Handlers) ListEvaluations(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort). Evaluations are immutable, so the
	// count plus the newest CreatedAt fully identify the collection.
	if db := h.evalDB(); db != nil {
		count, maxTS, err := repo.EvaluationsStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"evaluations:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, err := h.evalSvc.List(ctx, evaluationFilterFromQuery(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	if limit := utils.AtoiDefault(c.Query("limit"), 0); limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	ok(c, http.StatusOK, items)
}

// GetEvaluation godoc
// @ID          getEvaluation
// @Summary     Fetch one evaluation
// @Tags        Evaluations
// @Produce     json
// @Param       id  path  string  true  "Evaluation ID (UUID)"  format(uuid)
// @Success     200  {object}  domain.Evaluation
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Evaluation not found"
// @Router      /evaluations/{id} [get]
func (h *Handlers) GetEvaluation(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "evaluation id must be a UUID")
		return
	}
	e, err := h.evalSvc.Get(c.Request.Context(), id)
	if err != nil {
		failService(c, err, ErrCodeInternal)
		return
	}
	ok(c, http.StatusOK, e)
}
