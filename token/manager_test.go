package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/mochilabs/go-catalog-server/token"
)

const testSecret = "test-secret-1234"

func TestManager_IssueAndIntrospect(t *testing.T) {
	m := token.New(token.NewHMACSigner(testSecret))

	raw, err := m.IssueAdminToken()
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	intro := m.Introspection(raw)
	require.True(t, intro.Active)
	require.Equal(t, token.RoleAdmin, intro.Role)
	require.NotEmpty(t, intro.Jti)
	require.Equal(t, int64((2*time.Hour).Seconds()), intro.Exp-intro.Iat)
	require.True(t, m.IsAdmin(raw))
}

func TestManager_Introspection_InvalidTokens(t *testing.T) {
	m := token.New(token.NewHMACSigner(testSecret))

	t.Run("empty token", func(t *testing.T) {
		require.False(t, m.Introspection("").Active)
	})

	t.Run("garbled token", func(t *testing.T) {
		require.False(t, m.Introspection("not-a-jwt").Active)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := token.New(token.NewHMACSigner("a-different-secret"))
		raw, err := other.IssueAdminToken()
		require.NoError(t, err)
		require.False(t, m.Introspection(raw).Active)
	})

	t.Run("tampered payload", func(t *testing.T) {
		raw, err := m.IssueAdminToken()
		require.NoError(t, err)
		require.False(t, m.Introspection(raw+"x").Active)
	})

	t.Run("token without an expiry claim", func(t *testing.T) {
		signer := token.NewHMACSigner(testSecret)
		raw, err := signer.Sign(jwt.MapClaims{
			"role": token.RoleAdmin,
			"iat":  time.Now().Unix(),
			"jti":  "no-exp",
		})
		require.NoError(t, err)
		require.False(t, m.Introspection(raw).Active)
		require.False(t, m.IsAdmin(raw))
	})
}

func TestManager_Expiry(t *testing.T) {
	issuedAt := time.Now()
	currentTime := issuedAt
	m := token.New(
		token.NewHMACSigner(testSecret),
		token.WithNowFunc(func() time.Time { return currentTime }),
	)

	raw, err := m.IssueAdminToken()
	require.NoError(t, err)

	t.Run("valid immediately after issuance", func(t *testing.T) {
		require.True(t, m.IsAdmin(raw))
	})

	t.Run("valid just before expiry", func(t *testing.T) {
		currentTime = issuedAt.Add(2*time.Hour - time.Minute)
		require.True(t, m.IsAdmin(raw))
	})

	t.Run("invalid once expiry elapses", func(t *testing.T) {
		currentTime = issuedAt.Add(2*time.Hour + time.Minute)
		require.False(t, m.Introspection(raw).Active)
		require.False(t, m.IsAdmin(raw))
	})
}

func TestManager_WithTokenExpiry(t *testing.T) {
	issuedAt := time.Now()
	currentTime := issuedAt
	m := token.New(
		token.NewHMACSigner(testSecret),
		token.WithTokenExpiry(10*time.Minute),
		token.WithNowFunc(func() time.Time { return currentTime }),
	)
	require.Equal(t, 10*time.Minute, m.TokenExpiry())

	raw, err := m.IssueAdminToken()
	require.NoError(t, err)
	require.True(t, m.IsAdmin(raw))

	currentTime = issuedAt.Add(11 * time.Minute)
	require.False(t, m.IsAdmin(raw))
}
