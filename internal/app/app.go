package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/axiomforum/axiom-backend/internal/adapter/postgres"
	profilerepo "github.com/axiomforum/axiom-backend/internal/adapter/postgres/profile"
	replyrepo "github.com/axiomforum/axiom-backend/internal/adapter/postgres/reply"
	topicrepo "github.com/axiomforum/axiom-backend/internal/adapter/postgres/topic"
	"github.com/axiomforum/axiom-backend/internal/auth"
	"github.com/axiomforum/axiom-backend/internal/config"
	"github.com/axiomforum/axiom-backend/internal/service/activity"
	"github.com/axiomforum/axiom-backend/internal/service/forum"
	"github.com/axiomforum/axiom-backend/internal/service/profile"
	"github.com/axiomforum/axiom-backend/internal/session"
	"github.com/axiomforum/axiom-backend/internal/transport/middleware"
	"github.com/axiomforum/axiom-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, wires repositories, services, and transport, and
// serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	profiles := profilerepo.New(pool)
	topics := topicrepo.New(pool)
	replies := replyrepo.New(pool)

	sessions := session.NewManager()
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	forumSvc := forum.NewService(logger, topics, replies, postgres.NewTxManager(pool))
	profileSvc := profile.NewService(logger, profiles, cfg.Forum)
	activitySvc := activity.NewService(logger, topics, replies)

	// Per-account checker and edit state follows the session lifecycle.
	unsubProfile := sessions.Subscribe(profileSvc.HandleSession)
	defer unsubProfile()
	unsubActivity := sessions.Subscribe(activitySvc.HandleSession)
	defer unsubActivity()

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Session:  rest.NewSessionHandler(sessions, verifier, logger),
		Profile:  rest.NewProfileHandler(profileSvc, logger),
		Topics:   rest.NewTopicHandler(forumSvc, logger),
		Activity: rest.NewActivityHandler(activitySvc, logger),
	})

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerMinute, time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		limiter.Limit(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(verifier),
		middleware.Timeout(cfg.Forum.RequestTimeout),
	)(router)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
