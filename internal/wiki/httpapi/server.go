// Package httpapi exposes the wiki service over JSON-over-HTTP. Every
// /api route requires a bearer token, which is resolved into a subject by
// the identity service before the handler runs.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AaronBlvde/wiki-platform/internal/logging"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/models"
)

// SubjectResolver turns an Authorization header value into a verified
// subject. The concrete implementation is identity.Verifier.
type SubjectResolver interface {
	Resolve(ctx context.Context, rawHeader string) (string, error)
}

// PageAPI is the article service surface the transport needs.
type PageAPI interface {
	Create(ctx context.Context, subject, title, content string, catalogID *int64, hidden bool) (*models.Page, error)
	Get(ctx context.Context, id int64) (*models.Page, error)
	List(ctx context.Context, catalogID *int64) ([]*models.Page, error)
	Update(ctx context.Context, subject string, id int64, title, content *string) error
	Delete(ctx context.Context, subject string, id int64) error
}

// CatalogAPI is the catalog service surface the transport needs.
type CatalogAPI interface {
	Create(ctx context.Context, name string, hidden bool) (*models.Catalog, error)
	List(ctx context.Context) ([]*models.Catalog, error)
	Delete(ctx context.Context, id int64) error
}

type Server struct {
	address  string
	logger   logging.Logger
	resolver SubjectResolver
	pages    PageAPI
	catalogs CatalogAPI
}

func NewServer(address string, l logging.Logger, resolver SubjectResolver, pages PageAPI, catalogs CatalogAPI) *Server {
	return &Server{
		address:  address,
		logger:   l.With("module", "http_server"),
		resolver: resolver,
		pages:    pages,
		catalogs: catalogs,
	}
}

// Router assembles the chi routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/", s.handleHome)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Route("/pages", func(r chi.Router) {
			r.Post("/", s.handleCreatePage)
			r.Get("/", s.handleListPages)
			r.Get("/{id}", s.handleGetPage)
			r.Put("/{id}", s.handleUpdatePage)
			r.Delete("/{id}", s.handleDeletePage)
		})

		r.Route("/catalogs", func(r chi.Router) {
			r.Post("/", s.handleCreateCatalog)
			r.Get("/", s.handleListCatalogs)
			r.Delete("/{id}", s.handleDeleteCatalog)
		})
	})

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
