package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mochilabs/go-catalog-server/auth"
)

const (
	testUsername = "admin"
	testPassword = "correct horse battery staple"
)

func TestVerifier_Verify(t *testing.T) {
	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)

	v := auth.NewVerifier(testUsername, hash)

	t.Run("valid credentials", func(t *testing.T) {
		require.NoError(t, v.Verify(testUsername, testPassword))
	})

	t.Run("password off by one character", func(t *testing.T) {
		err := v.Verify(testUsername, "correct horse battery staplf")
		require.ErrorIs(t, err, auth.BadCredentialsErr)
	})

	t.Run("username off by one character", func(t *testing.T) {
		err := v.Verify("admim", testPassword)
		require.ErrorIs(t, err, auth.BadCredentialsErr)
	})

	t.Run("empty username", func(t *testing.T) {
		err := v.Verify("", testPassword)
		require.ErrorIs(t, err, auth.BadCredentialsErr)
	})

	t.Run("empty password", func(t *testing.T) {
		err := v.Verify(testUsername, "")
		require.ErrorIs(t, err, auth.BadCredentialsErr)
	})

	t.Run("both empty", func(t *testing.T) {
		err := v.Verify("", "")
		require.ErrorIs(t, err, auth.BadCredentialsErr)
	})
}

func TestVerifier_MissingDigest(t *testing.T) {
	v := auth.NewVerifier(testUsername, "")

	// A matching username with no configured digest is a deployment problem,
	// not a credential failure.
	err := v.Verify(testUsername, "anything")
	require.ErrorIs(t, err, auth.NoPasswordDigestErr)

	// A wrong username still reads as a plain credential failure.
	err = v.Verify("someone-else", "anything")
	require.ErrorIs(t, err, auth.BadCredentialsErr)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)

	require.True(t, auth.CheckPasswordHash(testPassword, hash))
	require.False(t, auth.CheckPasswordHash("wrong", hash))
	require.False(t, auth.CheckPasswordHash(testPassword, "not-a-bcrypt-hash"))
}
