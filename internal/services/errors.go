// Package services defines the business logic for members, accounts,
// criteria, evaluations, and coaching logs. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

// Authentication and authorization errors.
var (
	// ErrInvalidCredentials is returned when an email/password pair does not
	// match a stored account. Sign-in surfaces it without revealing which
	// half was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailInUse is returned when a sign-up or admin user creation uses
	// an email that already has an account.
	ErrEmailInUse = errors.New("email already in use")

	// ErrWeakPassword is returned when a password is shorter than the
	// configured minimum.
	ErrWeakPassword = errors.New("password too weak")

	// ErrForbidden is returned by the authorization gate when the actor's
	// role does not permit the attempted operation. No mutation happens.
	ErrForbidden = errors.New("operation not permitted for this role")
)

// Validation errors (checked before any store write is issued).
var (
	// ErrEmptyField is returned when a required creation-form field is blank.
	ErrEmptyField = errors.New("required field is empty")

	// ErrBadDate is returned when a date is not a valid ISO "YYYY-MM-DD" value.
	ErrBadDate = errors.New("date must be YYYY-MM-DD")

	// ErrBadRole is returned when a role value is not admin, evaluator, or agent.
	ErrBadRole = errors.New("unknown role")

	// ErrUnknownMember is returned when an evaluation or coaching log names
	// a member that does not exist.
	ErrUnknownMember = errors.New("unknown team member")

	// ErrBadScores is returned when an evaluation's score set is empty, uses
	// a criterion outside the current sequence, or holds a value outside 1..5.
	ErrBadScores = errors.New("scores must cover known criteria with values 1-5")

	// ErrAckIncomplete is returned when exactly one of the two
	// acknowledgement fields is supplied; they travel together.
	ErrAckIncomplete = errors.New("acknowledgement text and date must be set together")

	// ErrDuplicateName is returned when a member or criterion with the same
	// name already exists.
	ErrDuplicateName = errors.New("name already exists")
)

// Not-found errors.
var (
	// ErrMemberNotFound indicates the requested member does not exist.
	ErrMemberNotFound = errors.New("member not found")

	// ErrUserNotFound indicates the requested user account does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrCriterionNotFound indicates the requested criterion does not exist.
	ErrCriterionNotFound = errors.New("criterion not found")

	// ErrEvaluationNotFound indicates the requested evaluation does not exist.
	ErrEvaluationNotFound = errors.New("evaluation not found")

	// ErrLogNotFound indicates the requested coaching log does not exist.
	ErrLogNotFound = errors.New("coaching log not found")
)
