package api

import (
	"SkyCherry/internal/config"
	"SkyCherry/internal/http-server/handlers/errors"
	"SkyCherry/internal/http-server/handlers/key"
	"SkyCherry/internal/http-server/handlers/question"
	"SkyCherry/internal/http-server/middleware/authenticate"
	"SkyCherry/internal/http-server/middleware/metrics"
	"SkyCherry/internal/http-server/middleware/timeout"
	"SkyCherry/internal/lib/sl"
	"context"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	question.Core
	key.Core
}

// NewRouter builds the routing tree. /metrics is served without authentication.
func NewRouter(conf *config.Config, log *slog.Logger, handler Handler, reg *prometheus.Registry) (http.Handler, error) {
	requestMetrics, err := metrics.New(reg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	router := chi.NewRouter()
	router.Use(timeout.Timeout(conf.Listen.Timeout))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(requestMetrics.Handler)

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	router.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Use(authenticate.New(log, handler))

		r.Route("/api/v1", func(v1 chi.Router) {
			v1.Route("/questions", func(r chi.Router) {
				r.Get("/", question.ListQuestions(log, handler))
				r.Post("/", question.CreateQuestion(log, handler))
				r.Get("/{id}", question.GetQuestion(log, handler))
			})
			v1.Route("/key", func(r chi.Router) {
				r.Post("/new", key.Generate(log, handler))
			})
		})
	})

	return router, nil
}

func New(conf *config.Config, log *slog.Logger, handler Handler, reg *prometheus.Registry) (*Server, error) {
	router, err := NewRouter(conf, log, handler, reg)
	if err != nil {
		return nil, err
	}

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	return &Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
		httpServer: &http.Server{
			Handler:  router,
			ErrorLog: httpLog,
		},
	}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	serverAddress := s.conf.ListenAddress()
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	s.log.Info("starting api server", slog.String("address", serverAddress))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(listener)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
