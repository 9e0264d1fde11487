package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

type Server struct {
	logger   *slog.Logger
	handlers Handlers
	conf     config.HTTPServer
}

func New(logger *slog.Logger, moveUseCase moveUseCase, conf config.HTTPServer) *Server {
	return &Server{
		logger:   logger,
		handlers: NewHandlers(logger, moveUseCase),
		conf:     conf,
	}
}

func (that *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/ping", that.handlers.PingHandler)
	router.Post("/ai_move", that.handlers.AIMoveHandler)

	return router
}

// Start - serves HTTP until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	log := that.logger.With("method", "Start")

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  that.conf.ReadTimeout,
		WriteTimeout: that.conf.WriteTimeout,
		IdleTimeout:  that.conf.IdleTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	shutdownDone := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		defer close(shutdownDone)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), that.conf.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shut down HTTP server", "error", err)
		}
	})

	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		<-shutdownDone
		return nil
	}

	stop()

	return fmt.Errorf("failed to start server: %w", err)
}
