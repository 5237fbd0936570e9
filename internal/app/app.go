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

	"golang.org/x/sync/errgroup"

	"github.com/istpublications/intake-backend/internal/adapter/mailer"
	"github.com/istpublications/intake-backend/internal/adapter/postgres"
	contactrepo "github.com/istpublications/intake-backend/internal/adapter/postgres/contact"
	"github.com/istpublications/intake-backend/internal/adapter/postgres/emaillog"
	"github.com/istpublications/intake-backend/internal/adapter/postgres/emailtemplate"
	submissionrepo "github.com/istpublications/intake-backend/internal/adapter/postgres/submission"
	"github.com/istpublications/intake-backend/internal/config"
	"github.com/istpublications/intake-backend/internal/domain"
	"github.com/istpublications/intake-backend/internal/service/contact"
	"github.com/istpublications/intake-backend/internal/service/email"
	"github.com/istpublications/intake-backend/internal/service/submission"
	"github.com/istpublications/intake-backend/internal/transport/middleware"
	"github.com/istpublications/intake-backend/internal/transport/rest"
)

const rateLimitCleanup = time.Minute

// Run is the HTTP server entry point. It loads configuration, connects to
// the database, wires services and serves until ctx is cancelled, then
// shuts down gracefully. The in-process retry scheduler runs alongside
// the server when email.retry_interval > 0.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("mail_transport", cfg.SMTP.Transport),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	emailSvc := NewEmailService(logger, pool, cfg)
	txm := postgres.NewTxManager(pool)
	submissionSvc := submission.NewService(logger, submissionrepo.New(pool), emailSvc, txm, cfg.Submission.IDPrefix)
	contactSvc := contact.NewService(logger, contactrepo.New(pool), emailSvc)

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Submissions: rest.NewSubmissionHandler(submissionSvc, logger),
		Contacts:    rest.NewContactHandler(contactSvc, logger),
		Emails:      rest.NewEmailHandler(emailSvc, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
	}, limiter.Limit(cfg.Server.PublicRateLimit), cfg.Server.MaxBodyBytes)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return RunRetryScheduler(gctx, logger, emailSvc, cfg.Email.RetryInterval)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// NewEmailService builds the email pipeline over the database and the
// configured mail transport. Shared by the server and intakectl.
func NewEmailService(logger *slog.Logger, db postgres.Querier, cfg *config.Config) *email.Service {
	return email.NewService(
		logger,
		emailtemplate.New(db),
		emaillog.New(db),
		NewTransport(logger, cfg.SMTP),
		email.Config{
			SenderAddress: cfg.Email.SenderAddress,
			AdminAddress:  cfg.Email.AdminAddress,
			FrontendURL:   cfg.Email.FrontendURL,
			BackendURL:    cfg.Email.BackendURL,
			MaxRetries:    cfg.Email.MaxRetries,
		},
	)
}

// Transport delivers one outgoing message.
type Transport interface {
	Deliver(ctx context.Context, msg domain.OutgoingEmail) error
}

// NewTransport selects the mail transport named by cfg.Transport.
func NewTransport(logger *slog.Logger, cfg config.SMTPConfig) Transport {
	if cfg.Transport == config.TransportLog {
		return mailer.NewLog(logger)
	}
	return mailer.NewSMTP(cfg)
}
