package portal

import (
	"context"
	"embed"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"github.com/skybi/translation-portal/internal/api/portal/session"
	"github.com/skybi/translation-portal/internal/api/schema"
	"github.com/skybi/translation-portal/internal/config"
	"github.com/skybi/translation-portal/internal/importer"
	"github.com/skybi/translation-portal/internal/upstream"
	"html/template"
	"net/http"
	"sync"
	"time"
)

const shutdownTimeout = 10 * time.Second

//go:embed templates/*.html
var templateFS embed.FS

// Service represents the portal service serving the web client pages and its JSON API
type Service struct {
	mu     sync.Mutex
	server *http.Server
	closed bool

	Config *config.Config

	Sessions session.Storage
	Platform *upstream.Client

	importer  *importer.Importer
	templates *template.Template
	writer    *schema.Writer
}

// Startup starts up the portal and blocks until it is shut down
func (service *Service) Startup() error {
	service.mu.Lock()
	if service.closed {
		service.mu.Unlock()
		return http.ErrServerClosed
	}
	server := &http.Server{
		Addr:              service.Config.ListenAddress,
		Handler:           service.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	service.server = server
	service.mu.Unlock()
	return server.ListenAndServe()
}

// Shutdown gracefully shuts down the portal, waiting at most shutdownTimeout for in-flight requests
func (service *Service) Shutdown() {
	service.mu.Lock()
	defer service.mu.Unlock()
	service.closed = true
	if service.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := service.server.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("could not gracefully shut down the portal")
		service.server.Close()
	}
	service.server = nil
}

// Handler builds the HTTP handler serving every portal route
func (service *Service) Handler() http.Handler {
	// Create the HTTP schema writer
	service.writer = &schema.Writer{
		InternalErrorHook: func(err error) {
			log.Error().Err(err).Msg("the portal experienced an unexpected error")
		},
	}
	service.templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))
	service.importer = &importer.Importer{
		Client: service.Platform,
		Dir:    service.Config.ScratchDir(),
	}

	// Create the HTTP router
	router := chi.NewRouter()
	router.Use(middleware.RedirectSlashes)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: service.Config.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.Use(service.MiddlewareLoadSession)
	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteError(writer, http.StatusNotFound, schema.ErrNotFound)
	})
	router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteError(writer, http.StatusMethodNotAllowed, schema.ErrMethodNotAllowed)
	})

	// Register the session lifecycle pages
	router.Get("/", service.EndpointIndex)
	router.Get("/login", service.EndpointLogin)
	router.Get("/token-entry", service.EndpointTokenEntry)
	router.Post("/authenticate", service.EndpointAuthenticate)
	router.Get("/auth/redirect", service.EndpointAuthRedirect)
	router.Get("/logout", service.EndpointLogout)

	// Register the JSON API endpoints
	router.Route("/api", func(router chi.Router) {
		router.Get("/user", service.EndpointGetUser)
		router.Get("/health", service.EndpointHealth)
		router.Head("/health", service.EndpointHealth)

		router.Get("/workspaces", service.EndpointGetWorkspaces)
		router.Get("/workspaces/{id}", service.EndpointGetWorkspace)

		router.Get("/documents", service.EndpointGetDocuments)
		router.Post("/documents/import", service.EndpointImportDocument)
		router.Get("/documents/import/jobs/{job_id}", service.EndpointGetImportJob)

		router.Get("/index", service.EndpointGetIndices)
		router.Post("/index", service.EndpointCreateIndex)
		router.Get("/index/{id}", service.EndpointGetIndex)
		router.Delete("/index/{id}", service.EndpointDeleteIndex)

		router.Post("/translate", service.EndpointTranslate)
	})

	// Wrap the router into the request logging middlewares
	return nest(
		router,
		hlog.NewHandler(log.Logger),
		hlog.RemoteAddrHandler("ip"),
		hlog.AccessHandler(func(request *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(request).Info().
				Str("method", request.Method).
				Str("path", request.URL.Path).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("handled request")
		}),
	)
}

// nest wraps final into the given middlewares; the first middleware becomes the outermost one
func nest(final http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	handler := final
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}
