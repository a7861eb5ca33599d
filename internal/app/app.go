package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/wb-go/wbf/logger"

	"github.com/atln0/GigBooker/internal/ai"
	"github.com/atln0/GigBooker/internal/auth"
	"github.com/atln0/GigBooker/internal/config"
	"github.com/atln0/GigBooker/internal/handler"
	"github.com/atln0/GigBooker/internal/middleware"
	"github.com/atln0/GigBooker/internal/notification"
	"github.com/atln0/GigBooker/internal/pdf"
	"github.com/atln0/GigBooker/internal/repository"
	"github.com/atln0/GigBooker/internal/router"
	"github.com/atln0/GigBooker/internal/service"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"GigBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	profileRepo := repository.NewProfileRepo()
	bookingRepo := repository.NewBookingRepo()
	eventRepo := repository.NewEventRepo()
	sessionRepo := repository.NewSessionRepo()

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	drafter := ai.NewGeminiClient(
		a.cfg.Gemini.APIKey,
		a.cfg.Gemini.Model,
		a.cfg.Gemini.BaseURL,
		a.cfg.Gemini.Timeout,
	)

	tokens := auth.NewManager(a.cfg.Auth.Secret, a.cfg.Auth.TokenTTL)

	authService := service.NewAuthService(sessionRepo, tokens, a.log)
	profileService := service.NewProfileService(profileRepo, drafter, a.log)
	bookingService := service.NewBookingService(bookingRepo, eventRepo, profileRepo, sessionRepo, n, a.log)
	eventService := service.NewEventService(eventRepo)
	contractService := service.NewContractService(drafter, bookingRepo, profileRepo, a.log)

	h := handler.NewHandler(
		authService,
		profileService,
		bookingService,
		eventService,
		contractService,
		pdf.NewContractRenderer(),
	)

	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Session(tokens, authService),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
