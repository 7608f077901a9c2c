package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// RoleAdmin is the single role a session token can carry.
const RoleAdmin = "admin"

const defaultTokenExpiry = 2 * time.Hour

// Introspection reports whether a session token is valid and what it claims.
// When Active is false the other fields are not populated.
type Introspection struct {
	Active bool   `json:"active"`
	Role   string `json:"role,omitempty"`
	Iat    int64  `json:"iat,omitempty"`
	Exp    int64  `json:"exp,omitempty"`
	Jti    string `json:"jti,omitempty"`
}

// Manager mints and validates signed admin session tokens. The token is the
// sole record of a session: there is no server-side session table, so a
// signed token stays valid until its natural expiry even after logout.
type Manager struct {
	signer      Signer
	tokenExpiry time.Duration
	nowFunc     func() time.Time
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithTokenExpiry overrides the default 2 hour session lifetime.
func WithTokenExpiry(d time.Duration) ManagerOption {
	return func(m *Manager) {
		m.tokenExpiry = d
	}
}

// WithNowFunc sets the clock (primarily for testing).
func WithNowFunc(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowFunc = now
	}
}

// New creates a session token manager.
func New(signer Signer, options ...ManagerOption) *Manager {
	m := &Manager{
		signer:      signer,
		tokenExpiry: defaultTokenExpiry,
		nowFunc:     time.Now,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// TokenExpiry returns the configured session lifetime. The session cookie's
// Max-Age mirrors it.
func (m *Manager) TokenExpiry() time.Duration {
	return m.tokenExpiry
}

// IssueAdminToken creates a signed token carrying the admin role and an
// absolute expiry.
func (m *Manager) IssueAdminToken() (string, error) {
	now := m.nowFunc()
	claims := jwt.MapClaims{
		"role": RoleAdmin,
		"iat":  now.Unix(),
		"exp":  now.Add(m.tokenExpiry).Unix(),
		"jti":  uuid.New().String(),
	}

	signed, err := m.signer.Sign(claims)
	if err != nil {
		return "", errors.Wrap(err, "[Manager.IssueAdminToken] sign")
	}
	return signed, nil
}

// Introspection validates a raw token against the signer and the clock. A
// missing, garbled, badly signed or expired token is reported as inactive,
// never as an error.
func (m *Manager) Introspection(rawToken string) *Introspection {
	if strings.TrimSpace(rawToken) == "" {
		return &Introspection{Active: false}
	}

	// Every token this manager mints carries exp; one without it must not
	// validate forever.
	parser := jwt.NewParser(jwt.WithTimeFunc(m.nowFunc), jwt.WithExpirationRequired())
	tok, err := parser.Parse(rawToken, m.signer.GetVerificationKey)
	if err != nil || !tok.Valid {
		return &Introspection{Active: false}
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return &Introspection{Active: false}
	}

	role, _ := claims["role"].(string)
	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)
	jti, _ := claims["jti"].(string)

	return &Introspection{
		Active: true,
		Role:   role,
		Iat:    int64(iat),
		Exp:    int64(exp),
		Jti:    jti,
	}
}

// IsAdmin reports whether the raw token is an active admin session token.
func (m *Manager) IsAdmin(rawToken string) bool {
	intro := m.Introspection(rawToken)
	return intro.Active && intro.Role == RoleAdmin
}
