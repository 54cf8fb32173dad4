package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/royalvending/go-coaching-backend/internal/domain"
	"github.com/royalvending/go-coaching-backend/internal/repo"
	"github.com/royalvending/go-coaching-backend/internal/report"
)

// CoachingInput carries the fields of a coaching log creation request.
// Acknowledgement and AcknowledgementDate may be supplied together at
// creation when the agent was present for the session.
type CoachingInput struct {
	Member              string
	Coach               string
	Date                string
	Topics              string
	Actions             string
	Followup            string
	Acknowledgement     string
	AcknowledgementDate string
}

// CoachingService records coaching sessions and handles agent
// acknowledgements.
type CoachingService struct {
	DB *gorm.DB

	now func() time.Time
}

// NewCoachingService returns a CoachingService backed by the given database.
func NewCoachingService(db *gorm.DB) *CoachingService {
	return &CoachingService{DB: db, now: time.Now}
}

// Create validates and persists a new coaching log.
func (s *CoachingService) Create(ctx context.Context, actor Actor, in CoachingInput) (*domain.CoachingLog, error) {
	in.Member = strings.TrimSpace(in.Member)
	in.Coach = strings.TrimSpace(in.Coach)
	in.Topics = strings.TrimSpace(in.Topics)
	if in.Coach == "" {
		in.Coach = actor.DisplayName
	}
	if in.Member == "" || in.Coach == "" || in.Topics == "" {
		return nil, ErrEmptyField
	}
	if !validISODate(in.Date) {
		return nil, ErrBadDate
	}
	if in.Followup != "" && !validISODate(in.Followup) {
		return nil, ErrBadDate
	}
	if _, err := repo.GetMemberByName(ctx, s.DB, in.Member); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnknownMember
		}
		return nil, err
	}

	log := &domain.CoachingLog{
		Member:    in.Member,
		Coach:     in.Coach,
		Date:      in.Date,
		Topics:    in.Topics,
		Actions:   strings.TrimSpace(in.Actions),
		CreatedBy: actor.ID,
	}
	if in.Followup != "" {
		log.Followup = &in.Followup
	}

	// Both acknowledgement fields travel together.
	ack := strings.TrimSpace(in.Acknowledgement)
	switch {
	case ack != "" && in.AcknowledgementDate != "":
		if !validISODate(in.AcknowledgementDate) {
			return nil, ErrBadDate
		}
		log.AgentAcknowledgement = &ack
		log.AcknowledgementDate = &in.AcknowledgementDate
	case ack != "" || in.AcknowledgementDate != "":
		return nil, ErrAckIncomplete
	}

	if err := repo.CreateCoachingLog(ctx, s.DB, log); err != nil {
		return nil, err
	}
	return log, nil
}

// List returns coaching logs matching the filter, most recently added first.
func (s *CoachingService) List(ctx context.Context, f report.CoachingFilter) ([]domain.CoachingLog, error) {
	logs, err := repo.ListCoachingLogs(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	return f.Apply(logs), nil
}

// Get returns one coaching log by id.
func (s *CoachingService) Get(ctx context.Context, id string) (*domain.CoachingLog, error) {
	log, err := repo.GetCoachingLog(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	return log, nil
}

// Acknowledge records the agent's sign-off on a coaching log. Only
// agents acknowledge; the date defaults to today (UTC) when omitted.
// Exactly the two acknowledgement fields change.
func (s *CoachingService) Acknowledge(ctx context.Context, actor Actor, id, text, date string) (*domain.CoachingLog, error) {
	if err := RequireRole(actor, domain.RoleAgent); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyField
	}
	if date == "" {
		date = todayUTC(s.now)
	} else if !validISODate(date) {
		return nil, ErrBadDate
	}
	if err := repo.SetAcknowledgement(ctx, s.DB, id, text, date); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}
