package catalog

import (
	"context"

	"github.com/pkg/errors"
)

// PhotoSource is a tagged source for a new photo: either a direct URL with an
// explicit orientation, or raw bytes to be stored by an image host. The HTTP
// boundary dispatches into one of the two before anything reaches the
// resolver.
type PhotoSource interface {
	photoSource()
}

// DirectURLSource references an already-hosted image. The orientation is
// taken verbatim from the caller since the image cannot be measured.
type DirectURLSource struct {
	URL         string
	Orientation Orientation
}

// UploadSource carries raw image bytes for the image host to store. The
// orientation is derived from the stored image's pixel dimensions and never
// trusted from the caller.
type UploadSource struct {
	Bytes []byte

	// Folder namespaces the stored object, typically per album. Left empty,
	// the service fills it in from the target album ID.
	Folder string
}

func (DirectURLSource) photoSource() {}
func (UploadSource) photoSource()    {}

// PhotoResolver turns a PhotoSource into a hosted URL and an orientation.
type PhotoResolver interface {
	Resolve(ctx context.Context, source PhotoSource) (string, Orientation, error)
}

// Service orchestrates catalog mutations over the store and the photo
// resolver. Authorization happens at the HTTP boundary; mutating methods
// assume the caller has already been authenticated.
type Service struct {
	repo     Repo
	resolver PhotoResolver
}

// NewService creates the catalog service.
func NewService(repo Repo, resolver PhotoResolver) (*Service, error) {
	if repo == nil {
		return nil, errors.New("[NewService] catalog repo is required")
	}
	if resolver == nil {
		return nil, errors.New("[NewService] photo resolver is required")
	}
	return &Service{repo: repo, resolver: resolver}, nil
}

// Albums lists the catalog. Never requires auth, never fails.
func (s *Service) Albums() []Album {
	return s.repo.Albums()
}

// CreateAlbumResult carries the created album and, when a first photo was
// requested but could not be attached, the attachment failure. The album is
// deliberately not rolled back on a photo failure: the caller observes that
// album creation succeeded even though the photo did not.
type CreateAlbumResult struct {
	Album      *Album
	PhotoError error
}

// CreateAlbum creates an album and, when a photo source is supplied, resolves
// and attaches a first photo.
func (s *Service) CreateAlbum(ctx context.Context, title string, source PhotoSource) (*CreateAlbumResult, error) {
	album, err := s.repo.CreateAlbum(title)
	if err != nil {
		return nil, err
	}

	if source == nil {
		return &CreateAlbumResult{Album: album}, nil
	}

	photo, err := s.attachPhoto(ctx, album.ID, source)
	if err != nil {
		return &CreateAlbumResult{Album: album, PhotoError: err}, nil
	}

	album.Photos = append(album.Photos, *photo)
	return &CreateAlbumResult{Album: album}, nil
}

// AddPhoto resolves the source and appends the resulting photo to an
// existing album.
func (s *Service) AddPhoto(ctx context.Context, albumID string, source PhotoSource) (*Photo, error) {
	// Check the album before resolving so a bad album ID fails without any
	// upload work.
	if _, err := s.repo.Album(albumID); err != nil {
		return nil, err
	}
	return s.attachPhoto(ctx, albumID, source)
}

// DeleteAlbum removes an album and all its photos.
func (s *Service) DeleteAlbum(albumID string) error {
	return s.repo.DeleteAlbum(albumID)
}

// DeletePhoto removes a single photo from whichever album owns it.
func (s *Service) DeletePhoto(photoID string) error {
	return s.repo.DeletePhoto(photoID)
}

// attachPhoto resolves the source and appends the resulting photo. The
// resolver's I/O runs before the store is touched, so no catalog lock is held
// while an upload is in flight.
func (s *Service) attachPhoto(ctx context.Context, albumID string, source PhotoSource) (*Photo, error) {
	if upload, ok := source.(UploadSource); ok && upload.Folder == "" {
		upload.Folder = uploadFolder(albumID)
		source = upload
	}

	url, orientation, err := s.resolver.Resolve(ctx, source)
	if err != nil {
		return nil, err
	}
	return s.repo.AddPhoto(albumID, url, orientation)
}

const uploadFolderPrefix = "mochi"

func uploadFolder(albumID string) string {
	return uploadFolderPrefix + "/" + albumID
}
