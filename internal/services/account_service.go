package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/royalvending/go-coaching-backend/internal/domain"
	"github.com/royalvending/go-coaching-backend/internal/repo"
)

// AccountService manages user accounts on behalf of admins.
type AccountService struct {
	DB          *gorm.DB
	MinPassword int
}

// NewAccountService returns an AccountService backed by the given database.
func NewAccountService(db *gorm.DB, minPassword int) *AccountService {
	return &AccountService{DB: db, MinPassword: minPassword}
}

// List returns all live accounts sorted by display name. Any
// authenticated user may list accounts; sign-in forms and evaluator
// pickers need the roster.
func (s *AccountService) List(ctx context.Context) ([]domain.UserAccount, error) {
	return repo.ListUsers(ctx, s.DB)
}

// Create provisions an account with an explicit role. Admin only.
func (s *AccountService) Create(ctx context.Context, actor Actor, email, password, displayName, role string) (*domain.UserAccount, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	displayName = strings.TrimSpace(displayName)
	if email == "" || displayName == "" {
		return nil, ErrEmptyField
	}
	if !domain.ValidRole(role) {
		return nil, ErrBadRole
	}
	if len(password) < s.MinPassword {
		return nil, ErrWeakPassword
	}
	if _, err := repo.GetUserByEmail(ctx, s.DB, email); err == nil {
		return nil, ErrEmailInUse
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acct := &domain.UserAccount{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		Role:         role,
	}
	if err := repo.CreateUser(ctx, s.DB, acct); err != nil {
		if repo.IsDuplicate(err) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}
	return acct, nil
}

// Delete removes an account. Admin only. Records created by the account
// are untouched; a still-valid token for it resolves back to a fresh
// agent account on the next request.
func (s *AccountService) Delete(ctx context.Context, actor Actor, id string) error {
	if err := RequireAdmin(actor); err != nil {
		return err
	}
	if err := repo.DeleteUser(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
