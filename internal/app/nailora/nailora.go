// Package nailora собирает приложение: встроенное хранилище, сервисы,
// маршруты и HTTP-сервер с graceful shutdown.
package nailora

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/monicarachel101026-prog/Nailora/internal/config"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/jwt"
	"github.com/monicarachel101026-prog/Nailora/internal/migrations"
	"github.com/monicarachel101026-prog/Nailora/internal/navigation"
	"github.com/monicarachel101026-prog/Nailora/internal/services/booking"
	"github.com/monicarachel101026-prog/Nailora/internal/services/catalog"
	"github.com/monicarachel101026-prog/Nailora/internal/services/checkout"
	"github.com/monicarachel101026-prog/Nailora/internal/services/community"
	"github.com/monicarachel101026-prog/Nailora/internal/services/search"
	"github.com/monicarachel101026-prog/Nailora/internal/services/session"
	"github.com/monicarachel101026-prog/Nailora/internal/services/stylist"
	"github.com/monicarachel101026-prog/Nailora/internal/services/tutorial"
	"github.com/monicarachel101026-prog/Nailora/internal/storage/kvstore"
	"github.com/monicarachel101026-prog/Nailora/internal/storage/repository"
	"github.com/monicarachel101026-prog/Nailora/internal/storage/seed"
)

// App агрегирует HTTP-сервер и ресурсы, требующие остановки.
type App struct {
	server     *http.Server
	logger     *slog.Logger
	persistent *kvstore.Store
	ephemeral  *kvstore.Store
	checkouts  *checkout.Service
	navManager *navigation.Manager
}

// New собирает приложение: два яруса хранилища (файловый и в памяти),
// миграции схемы, сервисы и маршруты.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	persistent, err := kvstore.New(cfg.Storage.Path, cfg.Storage.MaxValueBytes)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(persistent.DB); err != nil {
		return nil, err
	}

	ephemeral, err := kvstore.NewMemory(cfg.Storage.MaxValueBytes)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(ephemeral.DB); err != nil {
		return nil, err
	}

	repo := repository.New(persistent)
	sessions := repository.NewSessionStore(persistent, ephemeral)
	jwtMaker := jwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL, cfg.JWTToken.RememberTTL)

	sessionService := session.New(repo, sessions, jwtMaker, cfg.Delays.Splash, logger)
	catalogService := catalog.New(repo, logger)
	tutorialService := tutorial.New(repo, logger)
	communityService := community.New(repo, logger)
	bookingService := booking.New(seed.Artists(), logger)
	checkoutService := checkout.New(sessionService, cfg.Delays.Processing, logger)
	stylistService := stylist.New(logger)
	searchService := search.New(repo, seed.Artists(), logger)
	navManager := navigation.NewManager(cfg.Delays.Transition)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, &Services{
		Session:   sessionService,
		Catalog:   catalogService,
		Tutorial:  tutorialService,
		Community: communityService,
		Booking:   bookingService,
		Checkout:  checkoutService,
		Stylist:   stylistService,
		Search:    searchService,
		Nav:       navManager,
		Settings:  repo,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.TimeoutHTTP,
		WriteTimeout: cfg.HTTPServer.TimeoutHTTP,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server:     srv,
		logger:     logger,
		persistent: persistent,
		ephemeral:  ephemeral,
		checkouts:  checkoutService,
		navManager: navManager,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.checkouts.Close()
		a.navManager.Close()
		_ = a.persistent.Close()
		_ = a.ephemeral.Close()
		return err
	}
}
