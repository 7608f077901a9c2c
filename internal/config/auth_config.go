package config

type Auth struct{}

var _ AuthConfig = Auth{}

// GetJWTSecret returns the secret used to sign session tokens. The default
// exists so development works out of the box; deployments must override it.
func (Auth) GetJWTSecret() string {
	return GetEnv("JWT_SECRET", "change_me")
}

func (Auth) GetAdminUsername() string {
	return GetEnv("ADMIN_USERNAME", "admin")
}

// GetAdminPasswordHash returns the bcrypt digest of the admin password.
// Deliberately no default: an empty value means logins fail with a
// misconfiguration error rather than a guessable fallback.
func (Auth) GetAdminPasswordHash() string {
	return GetEnv("ADMIN_PASSWORD_HASH", "")
}
