// @title Wedding RSVP API
// @version 1.0
// @description Guest RSVP lookup and submission plus admin reporting and guest import.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin token from /api/admin/login, sent as "Bearer <token>".
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"weddingrsvp/config"
	_ "weddingrsvp/docs"
	"weddingrsvp/internal/adapters/auth"
	"weddingrsvp/internal/adapters/email"
	"weddingrsvp/internal/db"
	delivery "weddingrsvp/internal/delivery/http"
	"weddingrsvp/internal/delivery/http/controllers"
	"weddingrsvp/internal/domain"
	"weddingrsvp/internal/repository/sqlstore"
	"weddingrsvp/internal/services"
)

const (
	serviceTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	conn, err := db.Open(ctx, cfg.DBDriver, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer conn.Close()

	if cfg.MigrateOnStart {
		if err := db.Migrate(ctx, conn, cfg.DBDriver, logger); err != nil {
			return err
		}
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	// Repositories
	eventRepo := sqlstore.NewEventRepository(conn)
	guestRepo := sqlstore.NewGuestRepository(conn)
	invitationRepo := sqlstore.NewInvitationRepository(conn)
	responseRepo := sqlstore.NewResponseRepository(conn)
	importRepo := sqlstore.NewGuestImportRepository(conn)

	// Services
	rsvpService := services.NewRSVPService(guestRepo, invitationRepo, responseRepo, emailService, cfg.RSVPNotifyEmail, logger, serviceTimeout)
	eventService := services.NewEventService(eventRepo, serviceTimeout)
	reportService := services.NewReportService(eventRepo, invitationRepo, responseRepo, serviceTimeout)
	importService := services.NewImportService(importRepo, logger, serviceTimeout)
	authService, err := services.NewAdminAuthService(auth.NewBcryptHasher(bcrypt.DefaultCost), auth.NewJWTIssuer(cfg.JWTSecret), cfg.AdminPassword, cfg.JWTExpiry)
	if err != nil {
		return err
	}

	expose := !cfg.IsProduction()
	router := delivery.NewRouter(delivery.Controllers{
		RSVP:  controllers.NewRSVPController(logger, rsvpService, expose),
		Admin: controllers.NewAdminController(logger, eventService, reportService, importService, expose),
		Auth:  controllers.NewAuthController(logger, authService, expose),
	}, auth.NewJWTVerifier(cfg.JWTSecret, domain.RoleAdmin), logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           delivery.WithMiddleware(router, cfg.AllowedOrigins, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "driver", cfg.DBDriver)
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

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
