// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Member
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a member is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/royalvending/go-coaching-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateMember inserts a new Member row with the given display name.
// The ID is a randomly generated UUID and CreatedAt is set to UTC.
func CreateMember(ctx context.Context, db *gorm.DB, name string) (*domain.Member, error) {
	m := &domain.Member{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// ListMembers returns all live members ordered by name ascending, the order
// the selects and admin list display them in. Soft-deleted rows are excluded
// by GORM automatically.
func ListMembers(ctx context.Context, db *gorm.DB) ([]domain.Member, error) {
	var out []domain.Member
	err := db.WithContext(ctx).Order("name asc").Find(&out).Error
	return out, err
}

// GetMember fetches a single member by ID or returns ErrNotFound.
func GetMember(ctx context.Context, db *gorm.DB, id string) (*domain.Member, error) {
	var m domain.Member
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetMemberByName fetches a live member by exact display name.
func GetMemberByName(ctx context.Context, db *gorm.DB, name string) (*domain.Member, error) {
	var m domain.Member
	if err := db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteMember soft-deletes a member by ID. Historical evaluations and
// coaching logs keep referencing the name; nothing cascades. Returns
// ErrNotFound when no live row matches.
func DeleteMember(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Member{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
