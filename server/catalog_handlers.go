package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mochilabs/go-catalog-server/catalog"
)

// maxUploadBytes bounds how much of a multipart body is held in memory.
const maxUploadBytes = 32 << 20

// PreflightHandler answers OPTIONS requests that the CORS middleware let
// through, such as same-origin ones without an Origin header.
func (s *Server) PreflightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}

// PingHandler is a plain liveness response for the root path.
func (s *Server) PingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(s.config.GetAppName() + " backend online"))
	}
}

// ListAlbumsHandler returns the whole catalog. Never requires auth.
func (s *Server) ListAlbumsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.catalog.Albums())
	}
}

type createAlbumRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Orientation string `json:"orientation"`
}

// createAlbumResponse is the created album, with the photo attachment error
// alongside when a requested first photo could not be resolved.
type createAlbumResponse struct {
	*catalog.Album
	PhotoError string `json:"photo_error,omitempty"`
}

// CreateAlbumHandler creates an album, optionally attaching a first photo
// from a direct URL (JSON body) or an uploaded file (multipart body). A
// failed attachment still answers 201: the album exists, and the response
// carries the photo error so the client can see both outcomes.
func (s *Server) CreateAlbumHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title, source, err := albumParams(r)
		if err != nil {
			writeJSONError(w, err.Error(), statusForError(err))
			return
		}

		result, err := s.catalog.CreateAlbum(r.Context(), title, source)
		if err != nil {
			writeJSONError(w, err.Error(), statusForError(err))
			return
		}

		if result.PhotoError != nil {
			log.Err(result.PhotoError).Str("albumId", result.Album.ID).Msg("first photo failed to attach")
			writeJSON(w, http.StatusCreated, createAlbumResponse{
				Album:      result.Album,
				PhotoError: result.PhotoError.Error(),
			})
			return
		}
		writeJSON(w, http.StatusCreated, result.Album)
	}
}

// DeleteAlbumHandler removes an album and everything in it.
func (s *Server) DeleteAlbumHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.catalog.DeleteAlbum(r.PathValue("id")); err != nil {
			writeJSONError(w, err.Error(), statusForError(err))
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

type createPhotoRequest struct {
	AlbumID     string `json:"albumId"`
	URL         string `json:"url"`
	Orientation string `json:"orientation"`
}

// CreatePhotoHandler adds a photo to an existing album. The body is either
// JSON `{albumId, url, orientation}` or multipart with an `albumId` field
// and a binary `file` field.
func (s *Server) CreatePhotoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		albumID, source, err := photoParams(r)
		if err != nil {
			writeJSONError(w, err.Error(), statusForError(err))
			return
		}

		photo, err := s.catalog.AddPhoto(r.Context(), albumID, source)
		if err != nil {
			writeJSONError(w, err.Error(), statusForError(err))
			return
		}
		writeJSON(w, http.StatusCreated, photo)
	}
}

// DeletePhotoHandler removes a single photo from whichever album owns it.
func (s *Server) DeletePhotoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.catalog.DeletePhoto(r.PathValue("id")); err != nil {
			writeJSONError(w, err.Error(), statusForError(err))
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// albumParams extracts the title and the optional first-photo source from a
// JSON or multipart request body.
func albumParams(r *http.Request) (string, catalog.PhotoSource, error) {
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return "", nil, errors.Wrap(malformedBodyErr, err.Error())
		}

		data, err := multipartFileBytes(r)
		if err != nil {
			return "", nil, err
		}

		title := r.FormValue("title")
		if data != nil {
			return title, catalog.UploadSource{Bytes: data}, nil
		}
		if url, orientation := r.FormValue("url"), r.FormValue("orientation"); url != "" || orientation != "" {
			return title, catalog.DirectURLSource{URL: url, Orientation: catalog.Orientation(orientation)}, nil
		}
		return title, nil, nil
	}

	var req createAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return "", nil, errors.Wrap(malformedBodyErr, err.Error())
	}

	if req.URL != "" || req.Orientation != "" {
		return req.Title, catalog.DirectURLSource{URL: req.URL, Orientation: catalog.Orientation(req.Orientation)}, nil
	}
	return req.Title, nil, nil
}

// photoParams extracts the target album and the photo source from a JSON or
// multipart request body. An uploaded file wins over URL form fields.
func photoParams(r *http.Request) (string, catalog.PhotoSource, error) {
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return "", nil, errors.Wrap(malformedBodyErr, err.Error())
		}

		data, err := multipartFileBytes(r)
		if err != nil {
			return "", nil, err
		}

		albumID := r.FormValue("albumId")
		if data != nil {
			return albumID, catalog.UploadSource{Bytes: data}, nil
		}
		return albumID, catalog.DirectURLSource{
			URL:         r.FormValue("url"),
			Orientation: catalog.Orientation(r.FormValue("orientation")),
		}, nil
	}

	var req createPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return "", nil, errors.Wrap(malformedBodyErr, err.Error())
	}
	return req.AlbumID, catalog.DirectURLSource{
		URL:         req.URL,
		Orientation: catalog.Orientation(req.Orientation),
	}, nil
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// multipartFileBytes reads the optional `file` field. Returns nil bytes when
// the field is absent.
func multipartFileBytes(r *http.Request) ([]byte, error) {
	file, _, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, errors.Wrap(malformedBodyErr, err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(malformedBodyErr, err.Error())
	}
	return data, nil
}
