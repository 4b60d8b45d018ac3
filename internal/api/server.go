package api

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/placebetween/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultHandlerTimeout = 15 * time.Second
	shutdownTimeout       = 10 * time.Second
)

type Server struct {
	mx             *chi.Mux
	engine         service.EngineServiceI
	mirror         service.MirrorServiceI
	jwtService     JWTServiceI
	logger         *slog.Logger
	handlerTimeout time.Duration
}

type ServicesList struct {
	EngineService  service.EngineServiceI
	MirrorService  service.MirrorServiceI
	JwtService     JWTServiceI
	Logger         *slog.Logger
	// Upper bound for one request, remote calls included
	HandlerTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	if servicesOptions.EngineService == nil || servicesOptions.MirrorService == nil || servicesOptions.JwtService == nil {
		log.Fatal("provided nil service to api server")
	}
	s := &Server{
		mx:             chi.NewMux(),
		engine:         servicesOptions.EngineService,
		mirror:         servicesOptions.MirrorService,
		jwtService:     servicesOptions.JwtService,
		logger:         servicesOptions.Logger,
		handlerTimeout: servicesOptions.HandlerTimeout,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.handlerTimeout <= 0 {
		s.handlerTimeout = defaultHandlerTimeout
	}
	s.MountHandlers()
	return s
}

func (s *Server) MountHandlers() {
	s.mx.Use(middleware.RealIP)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(middleware.Recoverer)

	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.Health)
		r.Get("/emotions", s.ListEmotions)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Get("/today", s.Today)
			r.Get("/activities", s.ListActivities)
			r.Post("/activities/{id}/complete", s.CompleteActivity)
			r.Get("/points", s.Points)
			r.Post("/emotions/checkin", s.Checkin)
			r.Get("/mirror/today", s.MirrorToday)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	s.logger.Info("shutdown initiated")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
