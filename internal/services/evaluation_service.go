package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/royalvending/go-coaching-backend/internal/domain"
	"github.com/royalvending/go-coaching-backend/internal/repo"
	"github.com/royalvending/go-coaching-backend/internal/report"
)

// EvaluationInput carries the fields of an evaluation creation request.
type EvaluationInput struct {
	Member    string
	Evaluator string
	Date      string
	Scores    map[string]int
	Comments  string
}

// EvaluationService records and lists performance evaluations.
type EvaluationService struct {
	DB *gorm.DB

	now func() time.Time
}

// NewEvaluationService returns an EvaluationService backed by the given database.
func NewEvaluationService(db *gorm.DB) *EvaluationService {
	return &EvaluationService{DB: db, now: time.Now}
}

// Create validates and persists a new evaluation. The total is always
// computed here from the submitted scores; a client-supplied total is
// ignored. Evaluations are immutable once stored.
func (s *EvaluationService) Create(ctx context.Context, actor Actor, in EvaluationInput) (*domain.Evaluation, error) {
	tr := otel.Tracer("services/EvaluationService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(
			attribute.String("member", in.Member),
			attribute.String("user.id", actor.ID),
		),
	)
	defer span.End()

	in.Member = strings.TrimSpace(in.Member)
	in.Evaluator = strings.TrimSpace(in.Evaluator)
	if in.Evaluator == "" {
		in.Evaluator = actor.DisplayName
	}
	if in.Member == "" || in.Evaluator == "" {
		return nil, ErrEmptyField
	}
	if !validISODate(in.Date) {
		return nil, ErrBadDate
	}
	if _, err := repo.GetMemberByName(ctx, s.DB, in.Member); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnknownMember
		}
		return nil, err
	}
	if err := s.checkScores(ctx, in.Scores); err != nil {
		return nil, err
	}

	e := &domain.Evaluation{
		Member:    in.Member,
		Evaluator: in.Evaluator,
		Date:      in.Date,
		Scores:    domain.ScoreMap(in.Scores),
		Total:     report.TotalOf(domain.Evaluation{Scores: domain.ScoreMap(in.Scores)}),
		Comments:  strings.TrimSpace(in.Comments),
	}
	if err := repo.CreateEvaluation(ctx, s.DB, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns evaluations matching the filter, most recently added first.
func (s *EvaluationService) List(ctx context.Context, f report.EvaluationFilter) ([]domain.Evaluation, error) {
	evals, err := repo.ListEvaluations(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	return f.Apply(evals), nil
}

// Get returns one evaluation by id.
func (s *EvaluationService) Get(ctx context.Context, id string) (*domain.Evaluation, error) {
	e, err := repo.GetEvaluation(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrEvaluationNotFound
		}
		return nil, err
	}
	return e, nil
}

// checkScores enforces a non-empty score set, keys drawn from the current
// criteria sequence, and values within 1..5.
func (s *EvaluationService) checkScores(ctx context.Context, scores map[string]int) error {
	if len(scores) == 0 {
		return ErrBadScores
	}
	names, err := repo.CriteriaNames(ctx, s.DB)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}
	for k, v := range scores {
		if !known[k] || v < 1 || v > 5 {
			return ErrBadScores
		}
	}
	return nil
}
