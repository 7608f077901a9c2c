package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mochilabs/go-catalog-server/auth"
	"github.com/mochilabs/go-catalog-server/catalog"
	"github.com/mochilabs/go-catalog-server/ingest"
	"github.com/mochilabs/go-catalog-server/ingest/imagehost"
	"github.com/mochilabs/go-catalog-server/internal/config"
	"github.com/mochilabs/go-catalog-server/server"
	"github.com/mochilabs/go-catalog-server/token"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	if c.GetEnv() == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	displayAppname(c.GetAppName())

	srv, err := buildServer(c)
	if err != nil {
		return fmt.Errorf("buildServer: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}
	go listenAndServe(httpServer)
	waitForStopSignal()
	return shutdown(httpServer)
}

func buildServer(c config.Config) (*server.Server, error) {
	repo := catalog.NewInMemoryCatalogRepo(catalog.WithSeedAlbums(catalog.StarterAlbums()...))

	var host ingest.ImageHost
	if bucket := c.GetS3Bucket(); bucket != "" {
		s3Host, err := imagehost.NewS3ImageHost(context.Background(), bucket, c.GetS3BaseURL(), c.GetAWSProfile())
		if err != nil {
			return nil, fmt.Errorf("imagehost.NewS3ImageHost: %w", err)
		}
		host = s3Host
		log.Info().Str("bucket", bucket).Msg("image host configured")
	} else {
		log.Warn().Msg("no S3_BUCKET configured; file uploads disabled, direct URLs still work")
	}

	resolver := ingest.NewResolver(host, ingest.WithUploadTimeout(c.GetUploadTimeout()))
	catalogService, err := catalog.NewService(repo, resolver)
	if err != nil {
		return nil, fmt.Errorf("catalog.NewService: %w", err)
	}

	verifier := auth.NewVerifier(c.GetAdminUsername(), c.GetAdminPasswordHash())
	tokens := token.New(token.NewHMACSigner(c.GetJWTSecret()))

	return server.New(c, catalogService, verifier, tokens)
}

func listenAndServe(httpServer *http.Server) {
	log.Info().Str("addr", httpServer.Addr).Msg("server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
