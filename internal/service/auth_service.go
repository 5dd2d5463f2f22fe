package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/shramik/admin-backend/internal/config"
	"github.com/shramik/admin-backend/internal/model"
)

// Claims extends JWT standard claims with the principal discriminator.
// Subject carries the principal ID.
type Claims struct {
	jwt.RegisteredClaims
	UserType    model.UserType `json:"userType"`
	Role        model.Role     `json:"role"`
	Email       string         `json:"email,omitempty"`       // USER only
	PhoneNumber string         `json:"phoneNumber,omitempty"` // WORKER only
}

// Identity is the normalized, live-resolved principal behind a valid token.
type Identity struct {
	ID          int64          `json:"id"`
	UserType    model.UserType `json:"userType"`
	Role        model.Role     `json:"role"`
	Name        string         `json:"name"`
	Email       string         `json:"email,omitempty"`
	PhoneNumber string         `json:"phoneNumber,omitempty"`
	IsActive    *bool          `json:"isActive,omitempty"`
}

// IsAdmin reports whether the identity may use the management API.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.UserType == model.UserTypeUser && i.Role == model.RoleAdmin
}

// IdentityOf builds an Identity from a resolved principal.
func IdentityOf(p model.Principal) *Identity {
	switch v := p.(type) {
	case *model.User:
		return &Identity{ID: v.ID, UserType: model.UserTypeUser, Role: v.Role, Name: v.Name, Email: v.Email}
	case *model.Worker:
		active := v.IsActive
		return &Identity{ID: v.ID, UserType: model.UserTypeWorker, Role: v.Role, Name: v.FullName(), PhoneNumber: v.PhoneNumber, IsActive: &active}
	default:
		return nil
	}
}

// AuthService verifies credentials, issues tokens and validates them
// against live storage.
type AuthService struct {
	secret  []byte
	expiry  time.Duration
	users   UserStore
	workers WorkerStore
	hasher  PasswordHasher
	log     zerolog.Logger
	now     func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, users UserStore, workers WorkerStore, hasher PasswordHasher, log zerolog.Logger) *AuthService {
	return &AuthService{
		secret:  []byte(cfg.JWTSecret),
		expiry:  cfg.JWTExpiry,
		users:   users,
		workers: workers,
		hasher:  hasher,
		log:     log.With().Str("component", "auth_service").Logger(),
		now:     time.Now,
	}
}

// VerifyAdmin checks an email/password pair.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) VerifyAdmin(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(translateRepoErr(err), ErrNotFound) {
			s.burnHash(password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// VerifyWorker checks a phone/password pair. A deactivated worker with the
// right password gets ErrInactiveAccount.
func (s *AuthService) VerifyWorker(ctx context.Context, phone, password string) (*model.Worker, error) {
	w, err := s.workers.GetByPhone(ctx, model.NormalizePhone(phone))
	if err != nil {
		if errors.Is(translateRepoErr(err), ErrNotFound) {
			s.burnHash(password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup worker: %w", err)
	}

	if err := s.hasher.Compare(w.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !w.IsActive {
		return nil, ErrInactiveAccount
	}
	return w, nil
}

// IssueToken signs a token for p.
func (s *AuthService) IssueToken(p model.Principal) (string, error) {
	now := s.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(p.PrincipalID(), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
		UserType: p.PrincipalType(),
		Role:     p.PrincipalRole(),
	}

	switch v := p.(type) {
	case *model.User:
		claims.Email = v.Email
	case *model.Worker:
		claims.PhoneNumber = v.PhoneNumber
	default:
		return "", fmt.Errorf("unsupported principal %T", p)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies signature and expiry only.
func (s *AuthService) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateToken parses tokenStr and re-resolves the principal it names.
// Deleted principals and deactivated workers fail with ErrInvalidToken.
func (s *AuthService) ValidateToken(ctx context.Context, tokenStr string) (*Identity, error) {
	claims, err := s.ParseToken(tokenStr)
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	switch claims.UserType {
	case model.UserTypeUser:
		u, err := s.users.GetByID(ctx, id)
		if err != nil {
			return nil, s.resolveErr(err)
		}
		return IdentityOf(u), nil

	case model.UserTypeWorker:
		w, err := s.workers.GetByID(ctx, id)
		if err != nil {
			return nil, s.resolveErr(err)
		}
		if !w.IsActive {
			return nil, fmt.Errorf("%w: worker inactive", ErrInvalidToken)
		}
		return IdentityOf(w), nil

	default:
		return nil, fmt.Errorf("%w: unknown user type %q", ErrInvalidToken, claims.UserType)
	}
}

func (s *AuthService) resolveErr(err error) error {
	if errors.Is(translateRepoErr(err), ErrNotFound) {
		return fmt.Errorf("%w: principal gone", ErrInvalidToken)
	}
	return fmt.Errorf("resolve principal: %w", err)
}

// burnHash spends one hash comparison so a missing account costs the same
// as a wrong password.
func (s *AuthService) burnHash(password string) {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("not-a-real-password")
		if err != nil {
			s.log.Warn().Err(err).Msg("failed to prepare dummy hash")
			return
		}
		s.dummyHash = h
	})
	if s.dummyHash != "" {
		_ = s.hasher.Compare(s.dummyHash, password)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
