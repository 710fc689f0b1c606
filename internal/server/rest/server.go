// Package rest exposes the melodia services over HTTP/JSON.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/melodia/internal/logging"
	"github.com/dmitrijs2005/melodia/internal/server/services"
)

type Server struct {
	address           string
	users             *services.UserService
	favorites         *services.FavoriteService
	logger            logging.Logger
	shutdownTimeout   time.Duration
	readHeaderTimeout time.Duration
}

func NewServer(a string, l logging.Logger, us *services.UserService, fs *services.FavoriteService, shutdownTimeout, readHeaderTimeout time.Duration) *Server {
	return &Server{
		address:           a,
		logger:            l.With("module", "rest_server"),
		users:             us,
		favorites:         fs,
		shutdownTimeout:   shutdownTimeout,
		readHeaderTimeout: readHeaderTimeout,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *Server) serve(ctx context.Context, listen net.Listener) error {

	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: s.readHeaderTimeout,
	}

	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		done <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-done
}
