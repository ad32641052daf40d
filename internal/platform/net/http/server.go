package http

import (
	"context"
	stdhttp "net/http"
	"time"

	"leadrouter/internal/platform/config"
	"leadrouter/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server pairs a chi mux with the stdlib http.Server that drives it.
type Server struct {
	addr string
	mux  *chi.Mux
	srv  *stdhttp.Server
}

// NewServer reads the listen address from config and builds the server.
// Each opt receives the mux, which is where callers mount middleware.
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("API_PORT", ":4000")

	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}

	return &Server{
		addr: addr,
		mux:  m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router exposes the mux behind the platform Router facade.
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr reports the configured listen address.
func (s *Server) Addr() string { return s.addr }

// Run blocks serving requests until the listener closes.
func (s *Server) Run(ctx context.Context) error {
	logger.Named("http").Info().Str("addr", s.addr).Msg("http listening")

	if err := s.srv.ListenAndServe(); err != stdhttp.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
