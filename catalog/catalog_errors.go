package catalog

import "errors"

var (
	TitleRequiredErr = errors.New("title required")
	AlbumNotFoundErr = errors.New("album not found")
	PhotoNotFoundErr = errors.New("photo not found")
)
