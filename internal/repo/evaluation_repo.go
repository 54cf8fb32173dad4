// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Evaluation
// model.
//
// Evaluations are append-only: there is no update function by design. The
// service layer validates scores and computes the total before handing the
// record here.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/royalvending/go-coaching-backend/internal/domain"
)

// CreateEvaluation inserts a new evaluation row. The ID is a randomly
// generated UUID and CreatedAt is set to UTC.
func CreateEvaluation(ctx context.Context, db *gorm.DB, e *domain.Evaluation) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(e).Error
}

// ListEvaluations returns the whole collection most-recently-added first,
// the display order for tables and the input order the filter layer
// preserves.
func ListEvaluations(ctx context.Context, db *gorm.DB) ([]domain.Evaluation, error) {
	var out []domain.Evaluation
	err := db.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

// GetEvaluation fetches a single evaluation by ID or returns ErrNotFound.
func GetEvaluation(ctx context.Context, db *gorm.DB, id string) (*domain.Evaluation, error) {
	var e domain.Evaluation
	if err := db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}
