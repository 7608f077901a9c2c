package catalog

// Repo owns album and photo lifetimes for the catalog. Implementations must
// make every mutation appear atomic to concurrent callers.
type Repo interface {
	// Albums returns every album with its nested photos in insertion order.
	Albums() []Album

	// Album returns a single album by ID, or AlbumNotFoundErr.
	Album(albumID string) (*Album, error)

	// CreateAlbum stores a new empty album. Fails with TitleRequiredErr when
	// the title is empty.
	CreateAlbum(title string) (*Album, error)

	// DeleteAlbum removes an album and all its photos, or AlbumNotFoundErr.
	DeleteAlbum(albumID string) error

	// AddPhoto appends a photo to an album, or AlbumNotFoundErr.
	AddPhoto(albumID, url string, orientation Orientation) (*Photo, error)

	// DeletePhoto removes a photo wherever it lives, or PhotoNotFoundErr.
	DeletePhoto(photoID string) error
}
