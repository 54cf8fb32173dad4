// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// The codes form a stable, machine-readable taxonomy that supplements the
// human-readable message in every error envelope. Generic codes mirror HTTP
// status semantics; domain-specific ones name the operation that failed.
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeCreateFailed = "create_failed"
	ErrCodeListFailed   = "list_failed"
	ErrCodeReportFailed = "report_failed"
	ErrCodeExportFailed = "export_failed"
	ErrCodeSignupFailed = "signup_failed"
	ErrCodeLoginFailed  = "login_failed"
)
