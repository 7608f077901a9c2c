package server

import "net/http"

// SessionCookieName is the cookie carrying the admin session token.
const SessionCookieName = "token"

const (
	MsgUnauthorized = "unauthorized"
	MsgInvalidToken = "invalid token"
)

// RequireAdmin rejects the request with 401 when the session cookie is
// missing or does not hold an active admin token. Expired tokens fail the
// same way; the client must log in again.
func (s *Server) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			writeJSONError(w, MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		if !s.tokens.IsAdmin(cookie.Value) {
			writeJSONError(w, MsgInvalidToken, http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}
