// Coaching-log HTTP handlers.
//
// Endpoints:
//   - POST /coaching-logs                     (create; idempotent via Idempotency-Key)
//   - GET  /coaching-logs                     (list with filters, weak ETag)
//   - GET  /coaching-logs/{id}                (fetch one)
//   - PUT  /coaching-logs/{id}/acknowledgement (agent acknowledges a session)
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

// CreateCoachingLogRequest is the JSON payload for logging a coaching session.
// Acknowledgement fields are optional but must be supplied together.
type CreateCoachingLogRequest struct {
	Member              string `json:"member" binding:"required" example:"Jane Doe"`
	Coach               string `json:"coach" example:"Eva Luator"`
	Date                string `json:"date" binding:"required" example:"2026-08-15"`
	Topics              string `json:"topics" binding:"required" example:"Call control, empathy statements"`
	Actions             string `json:"actions" example:"Shadow two calls next week"`
	Followup            string `json:"followup" example:"2026-08-29"`
	Acknowledgement     string `json:"acknowledgement" example:"Reviewed and agreed"`
	AcknowledgementDate string `json:"acknowledgement_date" example:"2026-08-16"`
}

// AcknowledgeRequest is the JSON payload for the acknowledgement cycle.
// Date defaults to today (UTC) when omitted.
type AcknowledgeRequest struct {
	Acknowledgement string `json:"acknowledgement" binding:"required" example:"Reviewed and agreed"`
	Date            string `json:"date" example:"2026-08-16"`
}

//
// Helpers
//

func coachingFilterFromQuery(c *gin.Context) report.CoachingFilter {
	return report.CoachingFilter{
		Member: c.Query("member"),
		Coach:  c.Query("coach"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Search: c.Query("q"),
	}
}

func (h *Handlers) coachDB() *gorm.DB {
	if svc, ok := h.coachSvc.(*services.CoachingService); ok {
		return svc.DB
	}
	return nil
}

//
// Handlers
//

// CreateCoachingLog godoc
// @ID          createCoachingLog
// @Summary     Log a coaching session
// @Description Stores a coaching session for a team member. Acknowledgement text and date must be supplied together or not at all.
// @Description Supports idempotency via the Idempotency-Key header (same key → same record).
// @Tags        Coaching
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header  string  false  "Idempotency key for safe retries (UUID recommended)"
// @Param       body  body  handlers.CreateCoachingLogRequest  true  "Coaching session payload"
// @Success     201  {object}  domain.CoachingLog
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /coaching-logs [post]
func (h *Handlers) CreateCoachingLog(c *gin.Context) {
	ctx := c.Request.Context()
	a := actor(c)

	var req CreateCoachingLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "member, date, and topics required")
		return
	}

	idemKey, _ := middleware.GetIdempotencyKey(c)
	if idemKey != "" {
		if db := h.coachDB(); db != nil {
			if rec, err := repo.GetIdempotency(ctx, db, a.ID, "coaching-logs", idemKey, time.Now().UTC()); err == nil && rec != nil {
				if prev, err2 := repo.GetCoachingLog(ctx, db, rec.RecordID); err2 == nil {
					c.Header("Idempotency-Replayed", "true")
					ok(c, http.StatusOK, prev)
					return
				}
			}
		}
	}

	log, err := h.coachSvc.Create(ctx, a, services.CoachingInput{
		Member:              req.Member,
		Coach:               req.Coach,
		Date:                req.Date,
		Topics:              req.Topics,
		Actions:             req.Actions,
		Followup:            req.Followup,
		Acknowledgement:     req.Acknowledgement,
		AcknowledgementDate: req.AcknowledgementDate,
	})
	if err != nil {
		failService(c, err, ErrCodeCreateFailed)
		return
	}

	if idemKey != "" {
		if db := h.coachDB(); db != nil {
			_, _ = repo.CreateIdempotency(ctx, db, a.ID, "coaching-logs", idemKey, log.ID, http.StatusCreated, h.idemTTL)
		}
	}

	ok(c, http.StatusCreated, log)
}

// ListCoachingLogs godoc
// @ID          listCoachingLogs
// @Summary     List coaching logs
// @Description Returns coaching logs most-recently-added first. Filters combine with AND. Supports weak ETag via If-None-Match.
// @Tags        Coaching
// @Produce     json
// @Param       member  query  string  false  "Exact member name"
// @Param       coach   query  string  false  "Exact coach name"
// @Param       from    query  string  false  "Inclusive lower session-date bound YYYY-MM-DD"
// @Param       to      query  string  false  "Inclusive upper session-date bound YYYY-MM-DD"
// @Param       q       query  string  false  "Case-insensitive search over topics and actions"
// @Param       limit   query  int     false  "Cap the number of returned records"
// @Success     200  {array}   domain.CoachingLog
// @Success     304  {string}  string  "Not Modified"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /coaching-logs [get]
func (h *Handlers) ListCoachingLogs(c *gin.Context) {
	ctx := c.Request.Context()

	// Coaching logs mutate on acknowledgement, so the ETag tracks the
	// newest UpdatedAt rather than CreatedAt.
	if db := h.coachDB(); db != nil {
		count, maxTS, err := repo.CoachingStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"coaching:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, err := h.coachSvc.List(ctx, coachingFilterFromQuery(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	if limit := utils.AtoiDefault(c.Query("limit"), 0); limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	ok(c, http.StatusOK, items)
}

// GetCoachingLog godoc
// @ID          getCoachingLog
// @Summary     Fetch one coaching log
// @Tags        Coaching
// @Produce     json
// @Param       id  path  string  true  "Coaching log ID (UUID)"  format(uuid)
// @Success     200  {object}  domain.CoachingLog
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Coaching log not found"
// @Router      /coaching-logs/{id} [get]
func (h *Handlers) GetCoachingLog(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "coaching log id must be a UUID")
		return
	}
	log, err := h.coachSvc.Get(c.Request.Context(), id)
	if err != nil {
		failService(c, err, ErrCodeInternal)
		return
	}
	ok(c, http.StatusOK, log)
}

// AcknowledgeCoachingLog godoc
// @ID          acknowledgeCoachingLog
// @Summary     Acknowledge a coaching session
// @Description Records the agent's acknowledgement text and date on an existing coaching log. Agent role only.
// @Tags        Coaching
// @Accept      json
// @Produce     json
// @Param       id    path  string  true  "Coaching log ID (UUID)"  format(uuid)
// @Param       body  body  handlers.AcknowledgeRequest  true  "Acknowledgement payload"
// @Success     200  {object}  domain.CoachingLog
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     403  {object}  handlers.ErrorResponse  "Forbidden"
// @Failure     404  {object}  handlers.ErrorResponse  "Coaching log not found"
// @Router      /coaching-logs/{id}/acknowledgement [put]
func (h *Handlers) AcknowledgeCoachingLog(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "coaching log id must be a UUID")
		return
	}

	var req AcknowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "acknowledgement text required")
		return
	}

	log, err := h.coachSvc.Acknowledge(c.Request.Context(), actor(c), id, req.Acknowledgement, req.Date)
	if err != nil {
		failService(c, err, ErrCodeInternal)
		return
	}
	ok(c, http.StatusOK, log)
}
