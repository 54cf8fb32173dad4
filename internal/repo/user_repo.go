// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// UserAccount model.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/royalvending/go-coaching-backend/internal/domain"
)

// CreateUser inserts a fully populated account row. Callers generate the ID
// and hash the password; the repo only persists. The unique email index
// surfaces duplicates as a DB error (see IsDuplicate).
func CreateUser(ctx context.Context, db *gorm.DB, u *domain.UserAccount) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(u).Error
}

// GetUser fetches an account by ID or returns ErrNotFound.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.UserAccount, error) {
	var u domain.UserAccount
	if err := db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail fetches an account by its unique email.
func GetUserByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.UserAccount, error) {
	var u domain.UserAccount
	if err := db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns all live accounts ordered by display name ascending.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.UserAccount, error) {
	var out []domain.UserAccount
	err := db.WithContext(ctx).Order("display_name asc").Find(&out).Error
	return out, err
}

// DeleteUser removes the account row for good. Accounts carry no tombstone
// column: a lingering row would keep holding the primary key and the unique
// email index, blocking both re-signup and the lazy recreation a still-valid
// token performs on its next request. Returns ErrNotFound when no row matches.
func DeleteUser(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.UserAccount{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
