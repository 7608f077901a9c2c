package server

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET "+RouteRoot, s.PingHandler())

	// Browser preflights arrive as OPTIONS on whatever path the front-end is
	// about to call; the CORS middleware answers them before this handler runs.
	s.RegisterRouteHandler("OPTIONS /", ChainMiddleware(s.PreflightHandler(), s.APIMiddleware()...))

	// Public catalog reads
	s.RegisterRouteHandler("GET "+RouteAlbums, ChainMiddleware(s.ListAlbumsHandler(), s.APIMiddleware()...))

	// Auth
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAuthMe, ChainMiddleware(s.MeHandler(), s.APIMiddleware()...))

	// Admin-gated mutations
	s.RegisterRouteHandler("POST "+RouteAlbums, ChainMiddleware(s.CreateAlbumHandler(), s.AdminAPIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteAlbumByID, ChainMiddleware(s.DeleteAlbumHandler(), s.AdminAPIMiddleware()...))
	s.RegisterRouteHandler("POST "+RoutePhotos, ChainMiddleware(s.CreatePhotoHandler(), s.AdminAPIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RoutePhotoByID, ChainMiddleware(s.DeletePhotoHandler(), s.AdminAPIMiddleware()...))
}
