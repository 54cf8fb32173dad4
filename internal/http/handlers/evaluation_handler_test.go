package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/royalvending/go-coaching-backend/internal/domain"
	"github.com/royalvending/go-coaching-backend/internal/repo"
	"github.com/royalvending/go-coaching-backend/internal/report"
	"github.com/royalvending/go-coaching-backend/internal/services"
)

func evalRouter(h *Handlers, a services.Actor) *gin.Engine {
	r := gin.New()
	g := r.Group("/", asActor(a))
	g.POST("/evaluations", h.CreateEvaluation)
	g.GET("/evaluations", h.ListEvaluations)
	g.GET("/evaluations/:id", h.GetEvaluation)
	return r
}

// withIdemKey simulates the idempotency middleware having validated a key.
func withIdemKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("idem.key", key)
		c.Next()
	}
}

func TestCreateEvaluation_BadJSON_Success_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Bad JSON -> 400
	{
		h := newTestHandlers()
		r := evalRouter(h, testEval)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/evaluations", bytes.NewBufferString("{bad"))
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("bad json -> %d", w.Code)
		}
	}

	// Success -> 201, input forwarded
	{
		var gotIn services.EvaluationInput
		svc := stubEvalSvc{create: func(ctx context.Context, a services.Actor, in services.EvaluationInput) (*domain.Evaluation, error) {
			gotIn = in
			return &domain.Evaluation{ID: "e1", Member: in.Member, Date: in.Date, Total: 4}, nil
		}}
		h := New(stubAuthSvc{}, stubMemberSvc{}, stubAccountSvc{}, stubCriteriaSvc{}, svc, stubCoachSvc{}, stubReportSvc{})
		r := evalRouter(h, testEval)

		w := httptest.NewRecorder()
		body := `{"member":"Jane Doe","date":"2026-08-15","scores":{"Communication":4,"Customer Service":5,"Task Management":3},"comments":"solid"}`
		req := httptest.NewRequest(http.MethodPost, "/evaluations", bytes.NewBufferString(body))
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("create -> %d body=%s", w.Code, w.Body.String())
		}
		if gotIn.Member != "Jane Doe" || gotIn.Scores["Communication"] != 4 || gotIn.Comments != "solid" {
			t.Fatalf("input = %#v", gotIn)
		}
	}

	// Service-side validation -> 400
	{
		svc := stubEvalSvc{create: func(context.Context, services.Actor, services.EvaluationInput) (*domain.Evaluation, error) {
			return nil, services.ErrBadScores
		}}
		h := New(stubAuthSvc{}, stubMemberSvc{}, stubAccountSvc{}, stubCriteriaSvc{}, svc, stubCoachSvc{}, stubReportSvc{})
		r := evalRouter(h, testEval)

		w := httptest.NewRecorder()
		body := `{"member":"Jane Doe","date":"2026-08-15","scores":{"Communication":9}}`
		req := httptest.NewRequest(http.MethodPost, "/evaluations", bytes.NewBufferString(body))
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("bad scores -> %d", w.Code)
		}
	}
}

func TestCreateEvaluation_IdempotentReplay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newHandlerDB(t)
	if err := repo.SeedCriteria(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := repo.CreateMember(context.Background(), db, "Jane Doe"); err != nil {
		t.Fatalf("member: %v", err)
	}

	svc := services.NewEvaluationService(db)
	h := New(stubAuthSvc{}, stubMemberSvc{}, stubAccountSvc{}, stubCriteriaSvc{}, svc, stubCoachSvc{}, stubReportSvc{})

	r := gin.New()
	g := r.Group("/", asActor(testEval), withIdemKey("retry-1"))
	g.POST("/evaluations", h.CreateEvaluation)

	body := `{"member":"Jane Doe","date":"2026-08-15","scores":{"Communication":4,"Customer Service":5,"Task Management":3}}`

	// First submission inserts and stores the idempotency record.
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodPost, "/evaluations", bytes.NewBufferString(body)))
	if w1.Code != http.StatusCreated {
		t.Fatalf("first -> %d body=%s", w1.Code, w1.Body.String())
	}
	var first domain.Evaluation
	if err := json.Unmarshal(w1.Body.Bytes(), &first); err != nil {
		t.Fatalf("json: %v", err)
	}
	if first.Total != 4 {
		t.Fatalf("total = %v", first.Total)
	}

	// Retry with the same key replays the stored record.
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodPost, "/evaluations", bytes.NewBufferString(body)))
	if w2.Code != http.StatusOK {
		t.Fatalf("replay -> %d body=%s", w2.Code, w2.Body.String())
	}
	if w2.Header().Get("Idempotency-Replayed") != "true" {
		t.Fatal("replay header missing")
	}
	var second domain.Evaluation
	if err := json.Unmarshal(w2.Body.Bytes(), &second); err != nil {
		t.Fatalf("json: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("replay returned different record: %s vs %s", second.ID, first.ID)
	}

	// Exactly one row exists.
	var n int64
	if err := db.Model(&domain.Evaluation{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("evaluations = %d", n)
	}
}

func TestCreateEvaluation_IdempotencyRecordHonorsConfiguredTTL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newHandlerDB(t)
	if err := repo.SeedCriteria(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := repo.CreateMember(context.Background(), db, "Jane Doe"); err != nil {
		t.Fatalf("member: %v", err)
	}

	ttl := 15 * time.Minute
	svc := services.NewEvaluationService(db)
	h := New(stubAuthSvc{}, stubMemberSvc{}, stubAccountSvc{}, stubCriteriaSvc{}, svc, stubCoachSvc{}, stubReportSvc{}).
		WithIdempotencyTTL(ttl)

	r := gin.New()
	g := r.Group("/", asActor(testEval), withIdemKey("retry-2"))
	g.POST("/evaluations", h.CreateEvaluation)

	before := time.Now().UTC()
	body := `{"member":"Jane Doe","date":"2026-08-15","scores":{"Communication":4,"Customer Service":5,"Task Management":3}}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/evaluations", bytes.NewBufferString(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("create -> %d body=%s", w.Code, w.Body.String())
	}

	var rec domain.Idempotency
	if err := db.Where("user_id = ? AND resource = ? AND key = ?", testEval.ID, "evaluations", "retry-2").
		First(&rec).Error; err != nil {
		t.Fatalf("idempotency row: %v", err)
	}
	if rec.ExpiresAt.Before(before.Add(ttl-time.Minute)) || rec.ExpiresAt.After(before.Add(ttl+time.Minute)) {
		t.Fatalf("expires_at = %v, want about %v after %v", rec.ExpiresAt, ttl, before)
	}
}

func TestListEvaluations_ForwardsFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotFilter report.EvaluationFilter
	svc := stubEvalSvc{list: func(ctx context.Context, f report.EvaluationFilter) ([]domain.Evaluation, error) {
		gotFilter = f
		return []domain.Evaluation{{ID: "e1", Member: "Jane Doe"}}, nil
	}}
	h := New(stubAuthSvc{}, stubMemberSvc{}, stubAccountSvc{}, stubCriteriaSvc{}, svc, stubCoachSvc{}, stubReportSvc{})
	r := evalRouter(h, testEval)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/evaluations?member=Jane+Doe&evaluator=Eva&month=2026-08&score=3-4&q=call", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list -> %d", w.Code)
	}
	want := report.EvaluationFilter{Member: "Jane Doe", Evaluator: "Eva", Month: "2026-08", ScoreRange: "3-4", Search: "call"}
	if gotFilter != want {
		t.Fatalf("filter = %#v", gotFilter)
	}
}

func TestListEvaluations_LimitCapsResults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := stubEvalSvc{list: func(context.Context, report.EvaluationFilter) ([]domain.Evaluation, error) {
		return []domain.Evaluation{{ID: "e3"}, {ID: "e2"}, {ID: "e1"}}, nil
	}}
	h := New(stubAuthSvc{}, stubMemberSvc{}, stubAccountSvc{}, stubCriteriaSvc{}, svc, stubCoachSvc{}, stubReportSvc{})
	r := evalRouter(h, testEval)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/evaluations?limit=2", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list -> %d", w.Code)
	}
	var out []domain.Evaluation
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(out) != 2 || out[0].ID != "e3" {
		t.Fatalf("limited list = %#v", out)
	}

	// Malformed limit is ignored.
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/evaluations?limit=abc", nil))
	var all []domain.Evaluation
	if err := json.Unmarshal(w2.Body.Bytes(), &all); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("unlimited list = %d", len(all))
	}
}

func TestListEvaluations_ETagNotModified(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newHandlerDB(t)
	if err := repo.SeedCriteria(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := repo.CreateMember(context.Background(), db, "Jane Doe"); err != nil {
		t.Fatalf("member: %v", err)
	}

	svc := services.NewEvaluationService(db)
	h := New(stubAuthSvc{}, stubMemberSvc{}, stubAccountSvc{}, stubCriteriaSvc{}, svc, stubCoachSvc{}, stubReportSvc{})
	r := evalRouter(h, testEval)

	if _, err := svc.Create(context.Background(), testEval, services.EvaluationInput{
		Member: "Jane Doe",
		Date:   "2026-08-15",
		Scores: map[string]int{"Communication": 4},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// First GET yields the collection ETag.
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/evaluations", nil))
	if w1.Code != http.StatusOK {
		t.Fatalf("first -> %d", w1.Code)
	}
	etag := w1.Header().Get("ETag")
	if etag == "" {
		t.Fatal("etag missing")
	}

	// Conditional GET with the same tag -> 304, empty body.
	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/evaluations", nil)
	req.Header.Set("If-None-Match", etag)
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusNotModified {
		t.Fatalf("conditional -> %d", w2.Code)
	}
	if w2.Body.Len() != 0 {
		t.Fatalf("304 body = %q", w2.Body.String())
	}

	// A new record invalidates the tag.
	if _, err := svc.Create(context.Background(), testEval, services.EvaluationInput{
		Member: "Jane Doe",
		Date:   "2026-08-16",
		Scores: map[string]int{"Communication": 5},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	w3 := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/evaluations", nil)
	req.Header.Set("If-None-Match", etag)
	r.ServeHTTP(w3, req)
	if w3.Code != http.StatusOK {
		t.Fatalf("stale tag -> %d", w3.Code)
	}
}

func TestGetEvaluation_BadID_NotFound_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Malformed ID -> 400
	{
		h := newTestHandlers()
		r := evalRouter(h, testEval)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/evaluations/nope", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("bad id -> %d", w.Code)
		}
	}

	// Unknown -> 404
	{
		svc := stubEvalSvc{get: func(context.Context, string) (*domain.Evaluation, error) {
			return nil, services.ErrEvaluationNotFound
		}}
		h := New(stubAuthSvc{}, stubMemberSvc{}, stubAccountSvc{}, stubCriteriaSvc{}, svc, stubCoachSvc{}, stubReportSvc{})
		r := evalRouter(h, testEval)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/evaluations/"+uuid.NewString(), nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("unknown -> %d", w.Code)
		}
	}

	// Success -> 200
	{
		id := uuid.NewString()
		h := newTestHandlers()
		r := evalRouter(h, testEval)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/evaluations/"+id, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("get -> %d", w.Code)
		}
		var out domain.Evaluation
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("json: %v", err)
		}
		if out.ID != id {
			t.Fatalf("id = %q", out.ID)
		}
	}
}
