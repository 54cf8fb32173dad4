package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/royalvending/go-coaching-backend/internal/domain"
	"github.com/royalvending/go-coaching-backend/internal/repo"
)

// CriteriaService manages the ordered sequence of evaluation criteria.
type CriteriaService struct {
	DB *gorm.DB
}

// NewCriteriaService returns a CriteriaService backed by the given database.
func NewCriteriaService(db *gorm.DB) *CriteriaService { return &CriteriaService{DB: db} }

// List returns all criteria in sequence order.
func (s *CriteriaService) List(ctx context.Context) ([]domain.Criterion, error) {
	return repo.ListCriteria(ctx, s.DB)
}

// Append adds a criterion at the end of the sequence. Admin only.
// Evaluations recorded before the append simply have no score for it.
func (s *CriteriaService) Append(ctx context.Context, actor Actor, name string) (*domain.Criterion, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return nil, ErrEmptyField
	}
	c, err := repo.AppendCriterion(ctx, s.DB, name)
	if err != nil {
		if repo.IsDuplicate(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return c, nil
}

// Remove deletes a criterion from the sequence. Admin only. Scores
// already recorded under the name remain in their evaluations and keep
// counting toward totals and skill averages.
func (s *CriteriaService) Remove(ctx context.Context, actor Actor, id string) error {
	if err := RequireAdmin(actor); err != nil {
		return err
	}
	if err := repo.DeleteCriterion(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCriterionNotFound
		}
		return err
	}
	return nil
}
