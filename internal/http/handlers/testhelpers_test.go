package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/royalvending/go-coaching-backend/internal/domain"
	"github.com/royalvending/go-coaching-backend/internal/report"
	"github.com/royalvending/go-coaching-backend/internal/services"
)

// ---------- test DB ----------

func newHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique DSN per call to avoid cross-test contamination
	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Member{}, &domain.UserAccount{}, &domain.Criterion{},
		&domain.Evaluation{}, &domain.CoachingLog{}, &domain.Idempotency{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// ---------- actor injection ----------

// asActor simulates the auth middleware by stashing a fixed actor.
func asActor(a services.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("actor", a)
		c.Set("userID", a.ID)
		c.Set("userRole", a.Role)
		c.Next()
	}
}

var (
	testAdmin = services.Actor{ID: "adm-1", Email: "admin@example.com", Role: domain.RoleAdmin, DisplayName: "Admin"}
	testEval  = services.Actor{ID: "eva-1", Email: "eva@example.com", Role: domain.RoleEvaluator, DisplayName: "Eva Luator"}
	testAgent = services.Actor{ID: "agt-1", Email: "agent@example.com", Role: domain.RoleAgent, DisplayName: "Jane Doe"}
)

// ---------- flexible service stubs ----------

type stubAuthSvc struct {
	signUp func(context.Context, string, string, string) (*domain.UserAccount, string, error)
	signIn func(context.Context, string, string) (*domain.UserAccount, string, error)
}

func (s stubAuthSvc) SignUp(ctx context.Context, email, pw, dn string) (*domain.UserAccount, string, error) {
	if s.signUp != nil {
		return s.signUp(ctx, email, pw, dn)
	}
	return &domain.UserAccount{ID: "u1", Email: email, Role: domain.RoleAgent, DisplayName: dn}, "tok", nil
}

func (s stubAuthSvc) SignIn(ctx context.Context, email, pw string) (*domain.UserAccount, string, error) {
	if s.signIn != nil {
		return s.signIn(ctx, email, pw)
	}
	return &domain.UserAccount{ID: "u1", Email: email, Role: domain.RoleAgent}, "tok", nil
}

type stubMemberSvc struct {
	create func(context.Context, services.Actor, string) (*domain.Member, error)
	list   func(context.Context) ([]domain.Member, error)
	get    func(context.Context, string) (*domain.Member, error)
	del    func(context.Context, services.Actor, string) error
}

func (s stubMemberSvc) Create(ctx context.Context, a services.Actor, name string) (*domain.Member, error) {
	if s.create != nil {
		return s.create(ctx, a, name)
	}
	return &domain.Member{ID: "m1", Name: name}, nil
}

func (s stubMemberSvc) List(ctx context.Context) ([]domain.Member, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

func (s stubMemberSvc) Get(ctx context.Context, id string) (*domain.Member, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return &domain.Member{ID: id, Name: "Jane Doe"}, nil
}

func (s stubMemberSvc) Delete(ctx context.Context, a services.Actor, id string) error {
	if s.del != nil {
		return s.del(ctx, a, id)
	}
	return nil
}

type stubAccountSvc struct {
	list   func(context.Context) ([]domain.UserAccount, error)
	create func(context.Context, services.Actor, string, string, string, string) (*domain.UserAccount, error)
	del    func(context.Context, services.Actor, string) error
}

func (s stubAccountSvc) List(ctx context.Context) ([]domain.UserAccount, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

func (s stubAccountSvc) Create(ctx context.Context, a services.Actor, email, pw, dn, role string) (*domain.UserAccount, error) {
	if s.create != nil {
		return s.create(ctx, a, email, pw, dn, role)
	}
	return &domain.UserAccount{ID: "u2", Email: email, Role: role, DisplayName: dn}, nil
}

func (s stubAccountSvc) Delete(ctx context.Context, a services.Actor, id string) error {
	if s.del != nil {
		return s.del(ctx, a, id)
	}
	return nil
}

type stubCriteriaSvc struct {
	list   func(context.Context) ([]domain.Criterion, error)
	append func(context.Context, services.Actor, string) (*domain.Criterion, error)
	remove func(context.Context, services.Actor, string) error
}

func (s stubCriteriaSvc) List(ctx context.Context) ([]domain.Criterion, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

func (s stubCriteriaSvc) Append(ctx context.Context, a services.Actor, name string) (*domain.Criterion, error) {
	if s.append != nil {
		return s.append(ctx, a, name)
	}
	return &domain.Criterion{ID: "c1", Name: name, Position: 7}, nil
}

func (s stubCriteriaSvc) Remove(ctx context.Context, a services.Actor, id string) error {
	if s.remove != nil {
		return s.remove(ctx, a, id)
	}
	return nil
}

type stubEvalSvc struct {
	create func(context.Context, services.Actor, services.EvaluationInput) (*domain.Evaluation, error)
	list   func(context.Context, report.EvaluationFilter) ([]domain.Evaluation, error)
	get    func(context.Context, string) (*domain.Evaluation, error)
}

func (s stubEvalSvc) Create(ctx context.Context, a services.Actor, in services.EvaluationInput) (*domain.Evaluation, error) {
	if s.create != nil {
		return s.create(ctx, a, in)
	}
	return &domain.Evaluation{ID: "e1", Member: in.Member, Date: in.Date, Total: 4}, nil
}

func (s stubEvalSvc) List(ctx context.Context, f report.EvaluationFilter) ([]domain.Evaluation, error) {
	if s.list != nil {
		return s.list(ctx, f)
	}
	return nil, nil
}

func (s stubEvalSvc) Get(ctx context.Context, id string) (*domain.Evaluation, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return &domain.Evaluation{ID: id}, nil
}

type stubCoachSvc struct {
	create func(context.Context, services.Actor, services.CoachingInput) (*domain.CoachingLog, error)
	list   func(context.Context, report.CoachingFilter) ([]domain.CoachingLog, error)
	get    func(context.Context, string) (*domain.CoachingLog, error)
	ack    func(context.Context, services.Actor, string, string, string) (*domain.CoachingLog, error)
}

func (s stubCoachSvc) Create(ctx context.Context, a services.Actor, in services.CoachingInput) (*domain.CoachingLog, error) {
	if s.create != nil {
		return s.create(ctx, a, in)
	}
	return &domain.CoachingLog{ID: "l1", Member: in.Member, Date: in.Date, Topics: in.Topics}, nil
}

func (s stubCoachSvc) List(ctx context.Context, f report.CoachingFilter) ([]domain.CoachingLog, error) {
	if s.list != nil {
		return s.list(ctx, f)
	}
	return nil, nil
}

func (s stubCoachSvc) Get(ctx context.Context, id string) (*domain.CoachingLog, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return &domain.CoachingLog{ID: id}, nil
}

func (s stubCoachSvc) Acknowledge(ctx context.Context, a services.Actor, id, text, date string) (*domain.CoachingLog, error) {
	if s.ack != nil {
		return s.ack(ctx, a, id, text, date)
	}
	return &domain.CoachingLog{ID: id, AgentAcknowledgement: &text, AcknowledgementDate: &date}, nil
}

type stubReportSvc struct {
	dashboard func(context.Context, string) (*services.DashboardMetrics, error)
	skills    func(context.Context) (map[string]float64, error)
	coaching  func(context.Context) (map[string]int, error)
	export    func(context.Context) ([]domain.Evaluation, []domain.CoachingLog, error)
}

func (s stubReportSvc) Dashboard(ctx context.Context, month string) (*services.DashboardMetrics, error) {
	if s.dashboard != nil {
		return s.dashboard(ctx, month)
	}
	return &services.DashboardMetrics{Month: month}, nil
}

func (s stubReportSvc) SkillAverages(ctx context.Context) (map[string]float64, error) {
	if s.skills != nil {
		return s.skills(ctx)
	}
	return map[string]float64{}, nil
}

func (s stubReportSvc) CoachingCounts(ctx context.Context) (map[string]int, error) {
	if s.coaching != nil {
		return s.coaching(ctx)
	}
	return map[string]int{}, nil
}

func (s stubReportSvc) ExportData(ctx context.Context) ([]domain.Evaluation, []domain.CoachingLog, error) {
	if s.export != nil {
		return s.export(ctx)
	}
	return nil, nil, nil
}

// newTestHandlers wires a Handlers with every service stubbed to its default.
// Individual tests override the stub they exercise.
func newTestHandlers() *Handlers {
	return New(stubAuthSvc{}, stubMemberSvc{}, stubAccountSvc{}, stubCriteriaSvc{}, stubEvalSvc{}, stubCoachSvc{}, stubReportSvc{})
}
