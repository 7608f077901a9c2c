package server

const (
	RouteRoot       = "/{$}"
	RouteAlbums     = "/albums"
	RouteAlbumByID  = "/albums/{id}"
	RoutePhotos     = "/photos"
	RoutePhotoByID  = "/photos/{id}"
	RouteAuthLogin  = "/auth/login"
	RouteAuthLogout = "/auth/logout"
	RouteAuthMe     = "/auth/me"
)
