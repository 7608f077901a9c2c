package ingest

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/mochilabs/go-catalog-server/catalog"
)

const defaultUploadTimeout = 30 * time.Second

// HostedImage is what an image host reports after storing raw bytes.
type HostedImage struct {
	URL    string
	Width  int
	Height int
}

// ImageHost stores raw image bytes and reports the hosted URL and pixel
// dimensions. Implementations are expected to honour context cancellation.
type ImageHost interface {
	Upload(ctx context.Context, folder string, data []byte) (*HostedImage, error)
}

// Resolver turns a photo source into a final (url, orientation) pair. For
// uploads the orientation is derived from the stored image's dimensions; for
// direct URLs the caller-supplied orientation is used verbatim.
type Resolver struct {
	host          ImageHost
	uploadTimeout time.Duration
}

var _ catalog.PhotoResolver = (*Resolver)(nil)

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithUploadTimeout bounds how long a single upload to the image host may
// take before it is reported as a host failure.
func WithUploadTimeout(d time.Duration) ResolverOption {
	return func(r *Resolver) {
		if d > 0 {
			r.uploadTimeout = d
		}
	}
}

// NewResolver creates a resolver. host may be nil when no image host is
// configured; uploads then fail with HostNotConfiguredErr while direct URLs
// keep working.
func NewResolver(host ImageHost, options ...ResolverOption) *Resolver {
	r := &Resolver{
		host:          host,
		uploadTimeout: defaultUploadTimeout,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Resolve dispatches on the source variant.
func (r *Resolver) Resolve(ctx context.Context, source catalog.PhotoSource) (string, catalog.Orientation, error) {
	switch src := source.(type) {
	case catalog.UploadSource:
		return r.resolveUpload(ctx, src)
	case catalog.DirectURLSource:
		return resolveDirectURL(src)
	default:
		return "", "", NoImageSourceErr
	}
}

func resolveDirectURL(src catalog.DirectURLSource) (string, catalog.Orientation, error) {
	if src.URL == "" {
		return "", "", NoImageSourceErr
	}
	if src.Orientation == "" {
		// Cannot be derived without measuring the image.
		return "", "", OrientationRequiredErr
	}
	if !src.Orientation.Valid() {
		return "", "", InvalidOrientationErr
	}
	return src.URL, src.Orientation, nil
}

func (r *Resolver) resolveUpload(ctx context.Context, src catalog.UploadSource) (string, catalog.Orientation, error) {
	if len(src.Bytes) == 0 {
		return "", "", NoImageSourceErr
	}
	if r.host == nil {
		return "", "", HostNotConfiguredErr
	}

	ctx, cancel := context.WithTimeout(ctx, r.uploadTimeout)
	defer cancel()

	hosted, err := r.host.Upload(ctx, src.Folder, src.Bytes)
	if err != nil {
		if errors.Is(err, UnsupportedImageErr) {
			return "", "", err
		}
		return "", "", errors.Wrap(HostUnavailableErr, err.Error())
	}

	// Square images count as landscape.
	orientation := catalog.OrientationPortrait
	if hosted.Width >= hosted.Height {
		orientation = catalog.OrientationLandscape
	}
	return hosted.URL, orientation, nil
}
