package server

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/mochilabs/go-catalog-server/auth"
	"github.com/mochilabs/go-catalog-server/catalog"
	"github.com/mochilabs/go-catalog-server/ingest"
)

const contentTypeJSON = "application/json; charset=utf-8"

// malformedBodyErr covers request bodies that cannot be parsed at all, as
// opposed to parsed bodies failing domain validation.
var malformedBodyErr = errors.New("invalid request body")

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONError writes the `{"error": ...}` body every failure uses.
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// statusForError maps typed domain failures onto HTTP statuses. Anything
// unrecognized is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, catalog.TitleRequiredErr),
		errors.Is(err, ingest.NoImageSourceErr),
		errors.Is(err, ingest.OrientationRequiredErr),
		errors.Is(err, ingest.InvalidOrientationErr),
		errors.Is(err, ingest.UnsupportedImageErr),
		errors.Is(err, malformedBodyErr):
		return http.StatusBadRequest
	case errors.Is(err, catalog.AlbumNotFoundErr),
		errors.Is(err, catalog.PhotoNotFoundErr):
		return http.StatusNotFound
	case errors.Is(err, auth.BadCredentialsErr):
		return http.StatusUnauthorized
	case errors.Is(err, ingest.HostNotConfiguredErr),
		errors.Is(err, ingest.HostUnavailableErr):
		return http.StatusServiceUnavailable
	case errors.Is(err, auth.NoPasswordDigestErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
