// Reporting HTTP handlers: dashboard metrics and per-skill/coaching rollups.
package handlers

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

var monthKeyRE = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Dashboard godoc
// @ID          dashboard
// @Summary     Dashboard metrics
// @Description Returns the headline metrics for one month: average score (with all-time fallback), members evaluated, coaching total, top skill, and the monthly trend series.
// @Tags        Reports
// @Produce     json
// @Param       month  query  string  false  "Month key YYYY-MM (defaults to the current month)"
// @Success     200  {object}  services.DashboardMetrics
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /dashboard [get]
func (h *Handlers) Dashboard(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	}
	if !monthKeyRE.MatchString(month) {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "month must be YYYY-MM")
		return
	}

	m, err := h.reportSvc.Dashboard(c.Request.Context(), month)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeReportFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, m)
}

// SkillAverages godoc
// @ID          skillAverages
// @Summary     Average score per skill
// @Description Returns the all-time average score keyed by criterion name. Criteria never scored are absent.
// @Tags        Reports
// @Produce     json
// @Success     200  {object}  map[string]float64
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /reports/skills [get]
func (h *Handlers) SkillAverages(c *gin.Context) {
	avgs, err := h.reportSvc.SkillAverages(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeReportFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, avgs)
}

// CoachingCounts godoc
// @ID          coachingCounts
// @Summary     Coaching sessions per member
// @Description Returns the number of coaching sessions logged for each team member.
// @Tags        Reports
// @Produce     json
// @Success     200  {object}  map[string]int
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /reports/coaching [get]
func (h *Handlers) CoachingCounts(c *gin.Context) {
	counts, err := h.reportSvc.CoachingCounts(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeReportFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, counts)
}
