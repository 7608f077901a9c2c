package catalog

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// InMemoryCatalogRepo is a volatile, process-local implementation of Repo.
// A single mutex serializes mutations so concurrent requests never observe
// partial state. The repo is constructed per process (or per test) and passed
// around explicitly; there is no ambient global catalog.
type InMemoryCatalogRepo struct {
	mu     sync.RWMutex
	albums []*Album
}

var _ Repo = (*InMemoryCatalogRepo)(nil)

// InMemoryCatalogRepoOption configures a new repo.
type InMemoryCatalogRepoOption func(*InMemoryCatalogRepo)

// WithSeedAlbums preloads the repo with starter albums.
func WithSeedAlbums(albums ...Album) InMemoryCatalogRepoOption {
	return func(r *InMemoryCatalogRepo) {
		for i := range albums {
			a := albums[i]
			if a.Photos == nil {
				a.Photos = []Photo{}
			}
			r.albums = append(r.albums, &a)
		}
	}
}

// NewInMemoryCatalogRepo creates an empty catalog repo.
func NewInMemoryCatalogRepo(options ...InMemoryCatalogRepoOption) *InMemoryCatalogRepo {
	r := &InMemoryCatalogRepo{}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *InMemoryCatalogRepo) Albums() []Album {
	r.mu.RLock()
	defer r.mu.RUnlock()

	albums := make([]Album, 0, len(r.albums))
	for _, a := range r.albums {
		albums = append(albums, copyAlbum(a))
	}
	return albums
}

func (r *InMemoryCatalogRepo) Album(albumID string) (*Album, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.albums {
		if a.ID == albumID {
			copied := copyAlbum(a)
			return &copied, nil
		}
	}
	return nil, AlbumNotFoundErr
}

func (r *InMemoryCatalogRepo) CreateAlbum(title string) (*Album, error) {
	if strings.TrimSpace(title) == "" {
		return nil, TitleRequiredErr
	}

	album := &Album{
		ID:     uuid.New().String(),
		Title:  title,
		Photos: []Photo{},
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.albums = append(r.albums, album)
	copied := copyAlbum(album)
	return &copied, nil
}

func (r *InMemoryCatalogRepo) DeleteAlbum(albumID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.albums {
		if a.ID == albumID {
			// The album owns its photos, so removing it cascades.
			r.albums = append(r.albums[:i], r.albums[i+1:]...)
			return nil
		}
	}
	return AlbumNotFoundErr
}

func (r *InMemoryCatalogRepo) AddPhoto(albumID, url string, orientation Orientation) (*Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.albums {
		if a.ID == albumID {
			photo := Photo{
				ID:          uuid.New().String(),
				AlbumID:     albumID,
				URL:         url,
				Orientation: orientation,
			}
			a.Photos = append(a.Photos, photo)
			return &photo, nil
		}
	}
	return nil, AlbumNotFoundErr
}

func (r *InMemoryCatalogRepo) DeletePhoto(photoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Photo IDs are globally unique, so ownership is unambiguous.
	for _, a := range r.albums {
		for i, p := range a.Photos {
			if p.ID == photoID {
				a.Photos = append(a.Photos[:i], a.Photos[i+1:]...)
				return nil
			}
		}
	}
	return PhotoNotFoundErr
}

// copyAlbum returns a deep copy so callers never hold references into the
// repo's internal state.
func copyAlbum(a *Album) Album {
	copied := *a
	copied.Photos = make([]Photo, len(a.Photos))
	copy(copied.Photos, a.Photos)
	return copied
}
