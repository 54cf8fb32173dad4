package services

import "github.com/royalvending/go-coaching-backend/internal/domain"

// Actor identifies the authenticated caller on whose behalf a service
// method runs. It is populated by the HTTP layer from the verified token.
type Actor struct {
	ID          string
	Email       string
	Role        string
	DisplayName string
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool { return a.Role == domain.RoleAdmin }

// RequireAdmin is the gate in front of every admin-only mutation. It
// returns ErrForbidden for any non-admin actor so service methods can
// bail out before touching the store.
func RequireAdmin(a Actor) error {
	if !a.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// RequireRole returns ErrForbidden unless the actor holds exactly the
// given role.
func RequireRole(a Actor, role string) error {
	if a.Role != role {
		return ErrForbidden
	}
	return nil
}
