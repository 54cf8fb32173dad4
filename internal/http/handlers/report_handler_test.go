package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/royalvending/go-coaching-backend/internal/services"
)

func reportRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	g := r.Group("/", asActor(testEval))
	g.GET("/dashboard", h.Dashboard)
	g.GET("/reports/skills", h.SkillAverages)
	g.GET("/reports/coaching", h.CoachingCounts)
	return r
}

func TestDashboard_MonthDefault_And_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Explicit month is forwarded as-is.
	{
		var gotMonth string
		svc := stubReportSvc{dashboard: func(ctx context.Context, month string) (*services.DashboardMetrics, error) {
			gotMonth = month
			avg := 4.2
			return &services.DashboardMetrics{Month: month, AverageScore: &avg, HasMonthData: true}, nil
		}}
		h := New(stubAuthSvc{}, stubMemberSvc{}, stubAccountSvc{}, stubCriteriaSvc{}, stubEvalSvc{}, stubCoachSvc{}, svc)
		r := reportRouter(h)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard?month=2026-03", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("dashboard -> %d", w.Code)
		}
		if gotMonth != "2026-03" {
			t.Fatalf("month = %q", gotMonth)
		}
		var out services.DashboardMetrics
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("json: %v", err)
		}
		if out.AverageScore == nil || *out.AverageScore != 4.2 {
			t.Fatalf("metrics = %#v", out)
		}
	}

	// Missing month defaults to the current month.
	{
		var gotMonth string
		svc := stubReportSvc{dashboard: func(ctx context.Context, month string) (*services.DashboardMetrics, error) {
			gotMonth = month
			return &services.DashboardMetrics{Month: month}, nil
		}}
		h := New(stubAuthSvc{}, stubMemberSvc{}, stubAccountSvc{}, stubCriteriaSvc{}, stubEvalSvc{}, stubCoachSvc{}, svc)
		r := reportRouter(h)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("dashboard -> %d", w.Code)
		}
		if want := time.Now().UTC().Format("2006-01"); gotMonth != want {
			t.Fatalf("default month = %q want %q", gotMonth, want)
		}
	}

	// Malformed month -> 400
	for _, bad := range []string{"2026", "2026-13", "202608", "aug-2026"} {
		h := newTestHandlers()
		r := reportRouter(h)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard?month="+bad, nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("month %q -> %d", bad, w.Code)
		}
	}
}

func TestDashboard_NoDataPassesNilAverage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := stubReportSvc{dashboard: func(ctx context.Context, month string) (*services.DashboardMetrics, error) {
		return &services.DashboardMetrics{Month: month, MonthlySeries: nil}, nil
	}}
	h := New(stubAuthSvc{}, stubMemberSvc{}, stubAccountSvc{}, stubCriteriaSvc{}, stubEvalSvc{}, stubCoachSvc{}, svc)
	r := reportRouter(h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard?month=2026-08", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard -> %d", w.Code)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("json: %v", err)
	}
	if string(raw["average_score"]) != "null" {
		t.Fatalf("average_score = %s", raw["average_score"])
	}
}

func TestSkillAverages_And_CoachingCounts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := stubReportSvc{
		skills: func(context.Context) (map[string]float64, error) {
			return map[string]float64{"Communication": 3.67}, nil
		},
		coaching: func(context.Context) (map[string]int, error) {
			return map[string]int{"Jane Doe": 2}, nil
		},
	}
	h := New(stubAuthSvc{}, stubMemberSvc{}, stubAccountSvc{}, stubCriteriaSvc{}, stubEvalSvc{}, stubCoachSvc{}, svc)
	r := reportRouter(h)

	{
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/skills", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("skills -> %d", w.Code)
		}
		var out map[string]float64
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("json: %v", err)
		}
		if out["Communication"] != 3.67 {
			t.Fatalf("skills = %#v", out)
		}
	}

	{
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/coaching", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("coaching -> %d", w.Code)
		}
		var out map[string]int
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("json: %v", err)
		}
		if out["Jane Doe"] != 2 {
			t.Fatalf("coaching = %#v", out)
		}
	}
}

func TestReports_InternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	boom := errors.New("db closed")
	svc := stubReportSvc{
		dashboard: func(context.Context, string) (*services.DashboardMetrics, error) { return nil, boom },
		skills:    func(context.Context) (map[string]float64, error) { return nil, boom },
		coaching:  func(context.Context) (map[string]int, error) { return nil, boom },
	}
	h := New(stubAuthSvc{}, stubMemberSvc{}, stubAccountSvc{}, stubCriteriaSvc{}, stubEvalSvc{}, stubCoachSvc{}, svc)
	r := reportRouter(h)

	for _, path := range []string{"/dashboard?month=2026-08", "/reports/skills", "/reports/coaching"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("%s -> %d", path, w.Code)
		}
		var er ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
			t.Fatalf("json: %v", err)
		}
		if er.Code != ErrCodeReportFailed {
			t.Fatalf("%s code = %q", path, er.Code)
		}
	}
}
