package server

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mochilabs/go-catalog-server/auth"
	"github.com/mochilabs/go-catalog-server/catalog"
	"github.com/mochilabs/go-catalog-server/internal/config"
	"github.com/mochilabs/go-catalog-server/token"
)

type Server struct {
	env      string // Environment (e.g., "DEV", "PROD")
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	catalog  *catalog.Service
	verifier *auth.Verifier
	tokens   *token.Manager
}

func New(cfg config.Config, catalogService *catalog.Service, verifier *auth.Verifier, tokens *token.Manager) (*Server, error) {
	if catalogService == nil {
		return nil, errors.New("[Server New] catalog service is required")
	}
	if verifier == nil {
		return nil, errors.New("[Server New] credential verifier is required")
	}
	if tokens == nil {
		return nil, errors.New("[Server New] token manager is required")
	}

	s := &Server{
		mux:      http.NewServeMux(),
		config:   cfg,
		catalog:  catalogService,
		verifier: verifier,
		tokens:   tokens,
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		log.Info().Str("route", route).Msg("registered")
	}
}
