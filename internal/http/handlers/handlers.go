// Handler wiring.
//
// Handlers are transport-thin: they validate and normalize input, call
// application services through narrow interfaces, and translate results
// into HTTP responses (including conditional responses and idempotent
// replays). Role checks live in the service layer; handlers only carry the
// authenticated actor through.
package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/royalvending/go-coaching-backend/internal/domain"
	"github.com/royalvending/go-coaching-backend/internal/http/middleware"
	"github.com/royalvending/go-coaching-backend/internal/report"
	"github.com/royalvending/go-coaching-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// AuthService defines the sign-up and sign-in operations consumed by the
// auth endpoints. Token verification happens in middleware, not here.
type AuthService interface {
	SignUp(ctx context.Context, email, password, displayName string) (*domain.UserAccount, string, error)
	SignIn(ctx context.Context, email, password string) (*domain.UserAccount, string, error)
}

// MemberService defines roster operations consumed by HTTP handlers.
type MemberService interface {
	Create(ctx context.Context, actor services.Actor, name string) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	Get(ctx context.Context, id string) (*domain.Member, error)
	Delete(ctx context.Context, actor services.Actor, id string) error
}

// AccountService defines user-account management operations.
type AccountService interface {
	List(ctx context.Context) ([]domain.UserAccount, error)
	Create(ctx context.Context, actor services.Actor, email, password, displayName, role string) (*domain.UserAccount, error)
	Delete(ctx context.Context, actor services.Actor, id string) error
}

// CriteriaService defines operations on the ordered criteria sequence.
type CriteriaService interface {
	List(ctx context.Context) ([]domain.Criterion, error)
	Append(ctx context.Context, actor services.Actor, name string) (*domain.Criterion, error)
	Remove(ctx context.Context, actor services.Actor, id string) error
}

// EvaluationService defines evaluation recording and retrieval.
type EvaluationService interface {
	Create(ctx context.Context, actor services.Actor, in services.EvaluationInput) (*domain.Evaluation, error)
	List(ctx context.Context, f report.EvaluationFilter) ([]domain.Evaluation, error)
	Get(ctx context.Context, id string) (*domain.Evaluation, error)
}

// CoachingService defines coaching-log recording, retrieval, and the
// acknowledgement cycle.
type CoachingService interface {
	Create(ctx context.Context, actor services.Actor, in services.CoachingInput) (*domain.CoachingLog, error)
	List(ctx context.Context, f report.CoachingFilter) ([]domain.CoachingLog, error)
	Get(ctx context.Context, id string) (*domain.CoachingLog, error)
	Acknowledge(ctx context.Context, actor services.Actor, id, text, date string) (*domain.CoachingLog, error)
}

// ReportService defines the dashboard and report aggregations.
type ReportService interface {
	Dashboard(ctx context.Context, monthKey string) (*services.DashboardMetrics, error)
	SkillAverages(ctx context.Context) (map[string]float64, error)
	CoachingCounts(ctx context.Context) (map[string]int, error)
	ExportData(ctx context.Context) ([]domain.Evaluation, []domain.CoachingLog, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints of the API. It depends on abstract
// service interfaces to keep transport concerns separate from business
// logic.
type Handlers struct {
	authSvc     AuthService
	memberSvc   MemberService
	accountSvc  AccountService
	criteriaSvc CriteriaService
	evalSvc     EvaluationService
	coachSvc    CoachingService
	reportSvc   ReportService
	idemTTL     time.Duration
}

// defaultIdempotencyTTL matches the config default for IDEMPOTENCY_TTL.
const defaultIdempotencyTTL = 24 * time.Hour

// New constructs a Handlers instance bound to the given services.
func New(
	authSvc AuthService,
	memberSvc MemberService,
	accountSvc AccountService,
	criteriaSvc CriteriaService,
	evalSvc EvaluationService,
	coachSvc CoachingService,
	reportSvc ReportService,
) *Handlers {
	return &Handlers{
		authSvc:     authSvc,
		memberSvc:   memberSvc,
		accountSvc:  accountSvc,
		criteriaSvc: criteriaSvc,
		evalSvc:     evalSvc,
		coachSvc:    coachSvc,
		reportSvc:   reportSvc,
		idemTTL:     defaultIdempotencyTTL,
	}
}

// WithIdempotencyTTL overrides how long stored idempotency records replay.
// Non-positive values keep the default. Returns h for chaining at wire-up.
func (h *Handlers) WithIdempotencyTTL(ttl time.Duration) *Handlers {
	if ttl > 0 {
		h.idemTTL = ttl
	}
	return h
}

// actor returns the authenticated actor stashed by the auth middleware.
// Protected routes always run behind that middleware, so a missing actor is
// a wiring bug surfaced as a zero-value (and thus unprivileged) actor.
func actor(c *gin.Context) services.Actor {
	a, _ := middleware.ActorFrom(c)
	return a
}
