package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mochilabs/go-catalog-server/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler checks the submitted credentials and, on success, sets the
// HTTP-only session cookie.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeJSONError(w, malformedBodyErr.Error(), http.StatusBadRequest)
			return
		}

		if err := s.verifier.Verify(req.Username, req.Password); err != nil {
			if errors.Is(err, auth.NoPasswordDigestErr) {
				log.Error().Msg("ADMIN_PASSWORD_HASH is not configured")
				writeJSONError(w, err.Error(), http.StatusInternalServerError)
				return
			}
			writeJSONError(w, auth.BadCredentialsErr.Error(), http.StatusUnauthorized)
			return
		}

		sessionToken, err := s.tokens.IssueAdminToken()
		if err != nil {
			log.Err(err).Msg("failed to issue session token")
			writeJSONError(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, s.sessionCookie(sessionToken, int(s.tokens.TokenExpiry().Seconds())))
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// LogoutHandler clears the session cookie. The token itself stays
// cryptographically valid until its natural expiry; there is no server-side
// revocation list.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, s.sessionCookie("", -1))
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// MeHandler reports whether the request carries an active admin session.
// Derived purely from cookie validity; never errors.
func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authenticated := false
		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			authenticated = s.tokens.IsAdmin(cookie.Value)
		}
		writeJSON(w, http.StatusOK, map[string]bool{"authenticated": authenticated})
	}
}

func (s *Server) sessionCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	}
	if s.env == "PROD" {
		// Cross-site front-ends need SameSite=None, which requires Secure.
		cookie.SameSite = http.SameSiteNoneMode
		cookie.Secure = true
	}
	return cookie
}
