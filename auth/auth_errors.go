package auth

import "errors"

var (
	BadCredentialsErr   = errors.New("bad credentials")
	NoPasswordDigestErr = errors.New("admin password digest not configured")
)
