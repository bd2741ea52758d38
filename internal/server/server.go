// Package server exposes the assessment engine over HTTP: catalog
// retrieval, assessment submission, and submission lookup.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"github.com/gulfwise/finclinic/internal/catalog"
	"github.com/gulfwise/finclinic/internal/config"
	"github.com/gulfwise/finclinic/internal/insight"
	"github.com/gulfwise/finclinic/internal/scoring"
	"github.com/gulfwise/finclinic/internal/store"
)

// langMatcher negotiates response language from Accept-Language.
// English is the fallback.
var langMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Arabic,
})

// Server is the assessment HTTP API.
type Server struct {
	cfg      config.ServerConfig
	assessor *scoring.Assessor
	catalog  *catalog.Catalog
	store    store.Store
	limiter  *rate.Limiter
}

// New builds a Server over one catalog revision, one insight matrix,
// and a submission store.
func New(cfg config.ServerConfig, cat *catalog.Catalog, matrix *insight.Matrix, st store.Store, maxInsights int) *Server {
	perSec := cfg.RatePerSec
	if perSec <= 0 {
		perSec = 20
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 40
	}
	return &Server{
		cfg:      cfg,
		assessor: scoring.NewAssessor(cat, matrix, maxInsights),
		catalog:  cat,
		store:    st,
		limiter:  rate.NewLimiter(rate.Limit(perSec), burst),
	}
}

// Router assembles the chi route tree. Exposed for tests.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(s.rateLimit)

	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Post("/assessments", s.handleCreateAssessment)
		r.Get("/assessments", s.handleListAssessments)
		r.Get("/assessments/{id}", s.handleGetAssessment)
	})

	return r
}

// Start runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		zap.L().Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zap.L().Warn("server shutdown", zap.Error(err))
		}
	}()

	zap.L().Info("starting server",
		zap.Int("port", s.cfg.Port),
		zap.String("catalog_revision", s.catalog.Revision()),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return eris.Wrap(err, "server: listen")
	}
	return nil
}

// rateLimit applies a global token-bucket limit across all clients.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// negotiateLang picks the response language from Accept-Language.
func negotiateLang(r *http.Request) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return language.English
	}
	tag, _, _ := langMatcher.Match(tags...)
	base, _ := tag.Base()
	if base.String() == "ar" {
		return language.Arabic
	}
	return language.English
}
