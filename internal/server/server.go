package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yigit/unitutor/internal/app/repositories"
	"github.com/yigit/unitutor/internal/bootstrap"
	"github.com/yigit/unitutor/internal/config"
	"github.com/yigit/unitutor/internal/middleware"
)

// Server holds the state for the HTTP server.
type Server struct {
	config      *config.Config
	router      *gin.Engine
	dbPool      *pgxpool.Pool
	rateLimiter *middleware.RateLimiter
	logger      zerolog.Logger
	http        *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer(configPath string) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	dbPool, err := bootstrap.SetupDatabase(context.Background(), cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps := bootstrap.BuildDependencies(cfg, repositories.NewRepositories(dbPool), dbPool, lgr)
	router := bootstrap.SetupRouter(cfg, deps, lgr)

	return &Server{
		config:      cfg,
		router:      router,
		dbPool:      dbPool,
		rateLimiter: deps.RateLimiter,
		logger:      lgr,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting server...")

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout(),
		WriteTimeout: s.config.WriteTimeout(),
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive either a server error or an OS signal
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout())
	defer cancel()

	shutdownError := false

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownError = true
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if s.dbPool != nil {
		s.logger.Info().Msg("Closing database connection pool...")
		s.dbPool.Close()
		s.logger.Info().Msg("Database connection pool closed.")
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	if shutdownError {
		return errors.New("server shutdown completed with errors")
	}
	return nil
}
