// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the ordered
// criteria sequence.
//
// Criteria are edited one row at a time (append / remove) rather than as a
// whole-list overwrite, so concurrent admins cannot silently drop each
// other's edits. Stored evaluations are never touched by criteria edits.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/royalvending/go-coaching-backend/internal/domain"
)

// ListCriteria returns the criteria sequence ordered by position ascending.
func ListCriteria(ctx context.Context, db *gorm.DB) ([]domain.Criterion, error) {
	var out []domain.Criterion
	err := db.WithContext(ctx).Order("position asc").Find(&out).Error
	return out, err
}

// CriteriaNames returns just the ordered names, the shape the evaluation
// form and score validation consume.
func CriteriaNames(ctx context.Context, db *gorm.DB) ([]string, error) {
	rows, err := ListCriteria(ctx, db)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, c := range rows {
		names = append(names, c.Name)
	}
	return names, nil
}

// AppendCriterion inserts a criterion at the end of the sequence. Position
// assignment and the insert run in one transaction so two concurrent appends
// cannot claim the same slot.
func AppendCriterion(ctx context.Context, db *gorm.DB, name string) (*domain.Criterion, error) {
	var created *domain.Criterion
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var max struct{ Position int }
		var count int64
		if err := tx.Model(&domain.Criterion{}).Count(&count).Error; err != nil {
			return err
		}
		next := 0
		if count > 0 {
			if err := tx.Model(&domain.Criterion{}).
				Select("position").
				Order("position desc").
				Limit(1).
				Scan(&max).Error; err != nil {
				return err
			}
			next = max.Position + 1
		}
		c := &domain.Criterion{
			ID:        uuid.NewString(),
			Name:      name,
			Position:  next,
			CreatedAt: time.Now().UTC(),
		}
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteCriterion removes a criterion by ID. Positions of the remaining rows
// are left as-is; ordering only relies on relative position values. Returns
// ErrNotFound when no row matches.
func DeleteCriterion(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Criterion{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
