package internal

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"connectrpc.com/grpchealth"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/meatsuits/bountyboard/internal/browse"
	"github.com/meatsuits/bountyboard/internal/config"
	"github.com/meatsuits/bountyboard/internal/rpc"
	"github.com/meatsuits/bountyboard/pkg/cerr"
	"github.com/meatsuits/bountyboard/pkg/clog"
)

type Server struct {
	server       *http.Server
	env          *config.Env
	rpcHandler   *rpc.Handler
	browseServer *browse.Server
}

func NewServer(env *config.Env, rpcHandler *rpc.Handler, browseServer *browse.Server) *Server {
	return &Server{
		env:          env,
		rpcHandler:   rpcHandler,
		browseServer: browseServer,
	}
}

// Handler assembles the full handler tree: the JSON-RPC endpoint and the
// browse API under /api, health checks, CORS and cleartext HTTP/2.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(clog.SlogChiMiddleware())

		// The JSON-RPC handler writes its own envelope.
		r.Get("/mcp", s.rpcHandler.ServeDiscovery)
		r.Post("/mcp", s.rpcHandler.ServeRPC)

		r.Group(func(r chi.Router) {
			r.Use(cerr.NewJSONResponseChiMiddleware())
			s.browseServer.Routes(r)
		})

		r.NotFound(cerr.NewJSONResponseChiMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cerr.SetNewJSONError(r.Context(), cerr.NotFound, "not found", nil)
		})).ServeHTTP)
	})

	mux := http.NewServeMux()

	mux.Handle("/health", &HealthChecker{})
	mux.Handle("/api/", r)
	mux.Handle(grpchealth.NewHandler(grpchealth.NewStaticChecker()))

	return h2c.NewHandler(cors.New(cors.Options{
		AllowedOrigins: s.env.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(mux), &http2.Server{})
}

// ListenAndServe starts the HTTP server. ctx becomes the base context of
// every request.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := net.JoinHostPort(s.env.HTTPHost, s.env.HTTPPort)
	slog.Info("starting server", "addr", addr)

	s.server = &http.Server{
		Addr:        addr,
		Handler:     s.Handler(),
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

type HealthChecker struct{}

func (hc *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
