package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/royalvending/go-coaching-backend/internal/domain"
	"github.com/royalvending/go-coaching-backend/internal/repo"
	"github.com/royalvending/go-coaching-backend/internal/report"
)

// DashboardMetrics is the headline summary shown on the dashboard for a
// selected month. AverageScore is nil when no evaluation exists at all;
// HasMonthData distinguishes a month average from the all-time fallback.
type DashboardMetrics struct {
	Month            string                  `json:"month"`
	AverageScore     *float64                `json:"average_score"`
	HasMonthData     bool                    `json:"has_month_data"`
	MembersEvaluated int                     `json:"members_evaluated"`
	CoachingTotal    int                     `json:"coaching_total"`
	TopSkill         string                  `json:"top_skill"`
	MonthlySeries    []report.MonthlyAverage `json:"monthly_series"`
}

// ReportService computes dashboard and report aggregates from the full
// evaluation and coaching collections.
type ReportService struct {
	DB *gorm.DB
}

// NewReportService returns a ReportService backed by the given database.
func NewReportService(db *gorm.DB) *ReportService { return &ReportService{DB: db} }

// Dashboard builds the month-scoped dashboard summary. The average falls
// back to the all-time mean when the month has no evaluations; every
// other metric is collection-wide.
func (s *ReportService) Dashboard(ctx context.Context, monthKey string) (*DashboardMetrics, error) {
	tr := otel.Tracer("services/ReportService")
	ctx, span := tr.Start(ctx, "Dashboard",
		trace.WithAttributes(attribute.String("month", monthKey)),
	)
	defer span.End()

	evals, err := repo.ListEvaluations(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	logs, err := repo.ListCoachingLogs(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	m := &DashboardMetrics{
		Month:            monthKey,
		MembersEvaluated: report.DistinctMembersEvaluated(evals),
		CoachingTotal:    len(logs),
		MonthlySeries:    report.MonthlyAverageSeries(evals),
	}
	if avg, ok := report.AverageScore(evals, monthKey); ok {
		m.AverageScore = &avg
	}
	if skill, ok := report.TopSkill(evals); ok {
		m.TopSkill = skill
	}
	m.HasMonthData = hasMonthData(evals, monthKey)
	return m, nil
}

// SkillAverages returns the mean score per criterion name across all
// evaluations. A criterion absent from an evaluation does not dilute
// its average.
func (s *ReportService) SkillAverages(ctx context.Context) (map[string]float64, error) {
	evals, err := repo.ListEvaluations(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	return report.AverageBySkill(evals), nil
}

// CoachingCounts returns the number of coaching sessions per member.
func (s *ReportService) CoachingCounts(ctx context.Context) (map[string]int, error) {
	logs, err := repo.ListCoachingLogs(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	return report.CoachingCountByMember(logs), nil
}

// ExportData returns both full collections for the export encoders.
func (s *ReportService) ExportData(ctx context.Context) ([]domain.Evaluation, []domain.CoachingLog, error) {
	evals, err := repo.ListEvaluations(ctx, s.DB)
	if err != nil {
		return nil, nil, err
	}
	logs, err := repo.ListCoachingLogs(ctx, s.DB)
	if err != nil {
		return nil, nil, err
	}
	return evals, logs, nil
}

// hasMonthData reports whether any evaluation falls in the given month.
func hasMonthData(evals []domain.Evaluation, monthKey string) bool {
	if monthKey == "" {
		return false
	}
	for _, e := range evals {
		if len(e.Date) >= 7 && e.Date[:7] == monthKey {
			return true
		}
	}
	return false
}
