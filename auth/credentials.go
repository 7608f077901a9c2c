package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Verifier checks a submitted identity against the single configured admin
// identity. Passwords are compared against a bcrypt digest, which is safe
// against timing attacks by construction.
type Verifier struct {
	adminUsername string
	passwordHash  string
}

// NewVerifier creates a verifier for the configured admin credentials.
func NewVerifier(adminUsername, passwordHash string) *Verifier {
	return &Verifier{
		adminUsername: adminUsername,
		passwordHash:  passwordHash,
	}
}

// Verify returns nil when the submitted credentials match the configured
// admin identity. Empty or malformed input is an ordinary mismatch, never a
// panic. A missing password digest is a deployment problem and is reported
// as NoPasswordDigestErr so callers can surface it separately from a plain
// credential failure.
func (v *Verifier) Verify(username, password string) error {
	if username == "" || username != v.adminUsername {
		return BadCredentialsErr
	}
	if v.passwordHash == "" {
		return NoPasswordDigestErr
	}
	if !CheckPasswordHash(password, v.passwordHash) {
		return BadCredentialsErr
	}
	return nil
}

// HashPassword produces a bcrypt digest for storage in configuration.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a plaintext password against a bcrypt digest.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
