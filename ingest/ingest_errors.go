package ingest

import "errors"

var (
	NoImageSourceErr       = errors.New("file or url required")
	OrientationRequiredErr = errors.New("orientation required")
	InvalidOrientationErr  = errors.New("orientation must be portrait or landscape")
	UnsupportedImageErr    = errors.New("unsupported image data")
	HostNotConfiguredErr   = errors.New("image host not configured")
	HostUnavailableErr     = errors.New("image host unavailable")
)
