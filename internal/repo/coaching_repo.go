// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// CoachingLog model.
//
// Coaching logs are created once and mutated only through the
// acknowledgement cycle: SetAcknowledgement writes exactly the two
// acknowledgement columns and nothing else.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/royalvending/go-coaching-backend/internal/domain"
)

// CreateCoachingLog inserts a new coaching-log row. The ID is a randomly
// generated UUID and CreatedAt is set to UTC.
func CreateCoachingLog(ctx context.Context, db *gorm.DB, l *domain.CoachingLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(l).Error
}

// ListCoachingLogs returns the whole collection most-recently-added first.
func ListCoachingLogs(ctx context.Context, db *gorm.DB) ([]domain.CoachingLog, error) {
	var out []domain.CoachingLog
	err := db.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

// GetCoachingLog fetches a single coaching log by ID or returns ErrNotFound.
func GetCoachingLog(ctx context.Context, db *gorm.DB, id string) (*domain.CoachingLog, error) {
	var l domain.CoachingLog
	if err := db.WithContext(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// SetAcknowledgement sets or overwrites both acknowledgement fields of a
// coaching log. No other column is updated. Returns ErrNotFound when the
// log does not exist.
func SetAcknowledgement(ctx context.Context, db *gorm.DB, id, text, date string) error {
	res := db.WithContext(ctx).
		Model(&domain.CoachingLog{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"agent_acknowledgement": text,
			"acknowledgement_date":  date,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
