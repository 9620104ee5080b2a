// Package httpapi exposes the identity service over JSON-over-HTTP:
// registration, credential authentication, and the network verification
// endpoint consumed by the wiki service.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AaronBlvde/wiki-platform/internal/identity/models"
	"github.com/AaronBlvde/wiki-platform/internal/logging"
)

// UserAPI is the service surface the transport needs. The concrete
// implementation is services.UserService.
type UserAPI interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	Verify(ctx context.Context, raw string) (bool, string)
}

type Server struct {
	address string
	logger  logging.Logger
	users   UserAPI
}

func NewServer(address string, l logging.Logger, users UserAPI) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		users:   users,
	}
}

// Router assembles the chi routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/register", s.handleRegister)
	r.Post("/api/authenticate", s.handleAuthenticate)
	r.Post("/api/verify", s.handleVerify)

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
