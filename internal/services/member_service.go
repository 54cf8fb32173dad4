package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/royalvending/go-coaching-backend/internal/domain"
	"github.com/royalvending/go-coaching-backend/internal/repo"
)

// MemberService manages the team member roster.
type MemberService struct {
	DB *gorm.DB
}

// NewMemberService returns a MemberService backed by the given database.
func NewMemberService(db *gorm.DB) *MemberService { return &MemberService{DB: db} }

// Create adds a member to the roster. Admin only. Names are trimmed and
// must be unique among live members.
func (s *MemberService) Create(ctx context.Context, actor Actor, name string) (*domain.Member, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return nil, ErrEmptyField
	}
	if _, err := repo.GetMemberByName(ctx, s.DB, name); err == nil {
		return nil, ErrDuplicateName
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	m, err := repo.CreateMember(ctx, s.DB, name)
	if err != nil {
		if repo.IsDuplicate(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return m, nil
}

// List returns all live members sorted by name.
func (s *MemberService) List(ctx context.Context) ([]domain.Member, error) {
	return repo.ListMembers(ctx, s.DB)
}

// Get returns one member by ID.
func (s *MemberService) Get(ctx context.Context, id string) (*domain.Member, error) {
	m, err := repo.GetMember(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

// Delete removes a member from the roster. Admin only. Existing
// evaluations and coaching logs keep referring to the member by name.
func (s *MemberService) Delete(ctx context.Context, actor Actor, id string) error {
	if err := RequireAdmin(actor); err != nil {
		return err
	}
	if err := repo.DeleteMember(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	return nil
}
