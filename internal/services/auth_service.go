package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/royalvending/go-coaching-backend/internal/domain"
	"github.com/royalvending/go-coaching-backend/internal/repo"
)

// Claims is the JWT payload issued at sign-in. Email and display name are
// carried so a missing account row can be recreated on the next request
// without a second lookup source.
type Claims struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
	jwt.RegisteredClaims
}

// AuthService implements sign-up, sign-in, and token verification.
type AuthService struct {
	DB          *gorm.DB
	Secret      []byte
	Issuer      string
	TokenTTL    time.Duration
	MinPassword int

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

// NewAuthService returns an AuthService wired to the given database and
// token settings.
func NewAuthService(db *gorm.DB, secret, issuer string, ttl time.Duration, minPassword int) *AuthService {
	return &AuthService{
		DB:          db,
		Secret:      []byte(secret),
		Issuer:      issuer,
		TokenTTL:    ttl,
		MinPassword: minPassword,
		now:         time.Now,
	}
}

// SignUp registers a new account. Self-service accounts always start as
// agents; elevated roles are granted by an admin through user management.
func (s *AuthService) SignUp(ctx context.Context, email, password, displayName string) (*domain.UserAccount, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	displayName = strings.TrimSpace(displayName)
	if email == "" || displayName == "" {
		return nil, "", ErrEmptyField
	}
	if len(password) < s.MinPassword {
		return nil, "", ErrWeakPassword
	}
	if _, err := repo.GetUserByEmail(ctx, s.DB, email); err == nil {
		return nil, "", ErrEmailInUse
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	acct := &domain.UserAccount{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		Role:         domain.RoleAgent,
	}
	if err := repo.CreateUser(ctx, s.DB, acct); err != nil {
		if repo.IsDuplicate(err) {
			return nil, "", ErrEmailInUse
		}
		return nil, "", err
	}
	token, err := s.issue(acct)
	if err != nil {
		return nil, "", err
	}
	return acct, token, nil
}

// SignIn verifies an email/password pair and issues a signed token.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.UserAccount, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	acct, err := repo.GetUserByEmail(ctx, s.DB, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.issue(acct)
	if err != nil {
		return nil, "", err
	}
	return acct, token, nil
}

// Verify parses and validates a bearer token and resolves the actor it
// names. When the account row has gone missing it is recreated with the
// agent role so a valid token never strands its holder.
func (s *AuthService) Verify(ctx context.Context, token string) (Actor, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.Secret, nil
	}, jwt.WithIssuer(s.Issuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return Actor{}, ErrInvalidCredentials
	}

	acct, err := repo.GetUser(ctx, s.DB, claims.UserID)
	switch {
	case err == nil:
	case errors.Is(err, repo.ErrNotFound):
		acct = &domain.UserAccount{
			ID:          claims.UserID,
			Email:       claims.Email,
			DisplayName: claims.DisplayName,
			Role:        domain.RoleAgent,
		}
		if cerr := repo.CreateUser(ctx, s.DB, acct); cerr != nil && !repo.IsDuplicate(cerr) {
			return Actor{}, cerr
		}
	default:
		return Actor{}, err
	}
	return Actor{ID: acct.ID, Email: acct.Email, Role: acct.Role, DisplayName: acct.DisplayName}, nil
}

func (s *AuthService) issue(acct *domain.UserAccount) (string, error) {
	now := s.now().UTC()
	claims := Claims{
		UserID:      acct.ID,
		Email:       acct.Email,
		Role:        acct.Role,
		DisplayName: acct.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			Subject:   acct.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}
