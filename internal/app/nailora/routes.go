// Package nailora предоставляет маршруты для основного приложения.
package nailora

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/monicarachel101026-prog/Nailora/internal/http/handlers/auth/login"
	"github.com/monicarachel101026-prog/Nailora/internal/http/handlers/auth/logout"
	"github.com/monicarachel101026-prog/Nailora/internal/http/handlers/auth/register"
	"github.com/monicarachel101026-prog/Nailora/internal/http/handlers/auth/restore"
	bookingartists "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/booking/artists"
	bookingcurrent "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/booking/current"
	bookingstart "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/booking/start"
	checkoutbegin "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/checkout/begin"
	checkoutcancel "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/checkout/cancel"
	checkoutotp "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/checkout/otp"
	checkoutproceed "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/checkout/proceed"
	checkoutstatus "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/checkout/status"
	postcreate "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/community/create"
	postlike "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/community/like"
	postlist "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/community/list"
	postremove "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/community/remove"
	designbadge "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/design/badge"
	designbulkarchive "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/design/bulkarchive"
	designbulkremove "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/design/bulkremove"
	designcreate "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/design/create"
	designfavorite "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/design/favorite"
	designfavorites "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/design/favorites"
	designlist "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/design/list"
	designread "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/design/read"
	designremove "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/design/remove"
	"github.com/monicarachel101026-prog/Nailora/internal/http/handlers/health"
	navback "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/nav/back"
	navnavigate "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/nav/navigate"
	navstate "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/nav/state"
	premiumactivate "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/premium/activate"
	premiumautorenew "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/premium/autorenew"
	premiumcancel "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/premium/cancel"
	profilecomplete "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/profile/complete"
	profileupdate "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/profile/update"
	searchhandler "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/search"
	"github.com/monicarachel101026-prog/Nailora/internal/http/handlers/settings/notifications"
	stylistask "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/stylist/ask"
	tutorialcomment "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/tutorial/comment"
	tutorialcreate "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/tutorial/create"
	tutoriallike "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/tutorial/like"
	tutoriallist "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/tutorial/list"
	tutorialread "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/tutorial/read"
	tutorialremove "github.com/monicarachel101026-prog/Nailora/internal/http/handlers/tutorial/remove"
	"github.com/monicarachel101026-prog/Nailora/internal/http/middlewarectx"
	"github.com/monicarachel101026-prog/Nailora/internal/navigation"
	"github.com/monicarachel101026-prog/Nailora/internal/services/booking"
	"github.com/monicarachel101026-prog/Nailora/internal/services/catalog"
	"github.com/monicarachel101026-prog/Nailora/internal/services/checkout"
	"github.com/monicarachel101026-prog/Nailora/internal/services/community"
	searchsvc "github.com/monicarachel101026-prog/Nailora/internal/services/search"
	"github.com/monicarachel101026-prog/Nailora/internal/services/session"
	"github.com/monicarachel101026-prog/Nailora/internal/services/stylist"
	"github.com/monicarachel101026-prog/Nailora/internal/services/tutorial"
)

// Services перечисляет сервисы, которые обслуживают маршруты приложения.
type Services struct {
	Session   *session.Service
	Catalog   *catalog.Service
	Tutorial  *tutorial.Service
	Community *community.Service
	Booking   *booking.Service
	Checkout  *checkout.Service
	Stylist   *stylist.Service
	Search    *searchsvc.Service
	Nav       *navigation.Manager
	Settings  notifications.Service
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, svc *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, svc.Session).ServeHTTP)
		r.Post("/login", login.New(logger, svc.Session).ServeHTTP)
		r.Post("/session/restore", restore.New(logger, svc.Session).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(svc.Session, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/logout", logout.New(logger, svc.Session).ServeHTTP)
			r.Post("/profile/complete", profilecomplete.New(logger, svc.Session).ServeHTTP)
			r.Put("/profile", profileupdate.New(logger, svc.Session).ServeHTTP)

			r.Post("/premium/activate", premiumactivate.New(logger, svc.Session).ServeHTTP)
			r.Post("/premium/autorenew", premiumautorenew.New(logger, svc.Session).ServeHTTP)
			r.Post("/premium/cancel", premiumcancel.New(logger, svc.Session).ServeHTTP)

			r.Get("/designs", designlist.New(logger, svc.Catalog).ServeHTTP)
			r.Post("/designs", designcreate.New(logger, svc.Catalog).ServeHTTP)
			r.Get("/designs/new-count", designbadge.New(logger, svc.Catalog).ServeHTTP)
			r.Post("/designs/seen", designbadge.NewSeen(logger, svc.Catalog).ServeHTTP)
			r.Post("/designs/bulk-remove", designbulkremove.New(logger, svc.Catalog).ServeHTTP)
			r.Post("/designs/bulk-archive", designbulkarchive.New(logger, svc.Catalog).ServeHTTP)
			r.Get("/designs/{title}", designread.New(logger, svc.Catalog).ServeHTTP)
			r.Delete("/designs/{title}", designremove.New(logger, svc.Catalog).ServeHTTP)
			r.Post("/designs/{title}/favorite", designfavorite.New(logger, svc.Catalog).ServeHTTP)
			r.Get("/favorites", designfavorites.New(logger, svc.Catalog).ServeHTTP)

			r.Get("/tutorials", tutoriallist.New(logger, svc.Tutorial).ServeHTTP)
			r.Post("/tutorials", tutorialcreate.New(logger, svc.Tutorial).ServeHTTP)
			r.Get("/tutorials/{id}", tutorialread.New(logger, svc.Tutorial).ServeHTTP)
			r.Delete("/tutorials/{id}", tutorialremove.New(logger, svc.Tutorial).ServeHTTP)
			r.Post("/tutorials/{id}/comments", tutorialcomment.New(logger, svc.Tutorial).ServeHTTP)
			r.Post("/tutorials/{id}/like", tutoriallike.New(logger, svc.Tutorial).ServeHTTP)

			r.Get("/posts", postlist.New(logger, svc.Community).ServeHTTP)
			r.Post("/posts", postcreate.New(logger, svc.Community).ServeHTTP)
			r.Delete("/posts/{id}", postremove.New(logger, svc.Community).ServeHTTP)
			r.Post("/posts/{id}/like", postlike.New(logger, svc.Community).ServeHTTP)

			r.Get("/artists", bookingartists.New(logger, svc.Booking).ServeHTTP)
			r.Post("/booking", bookingstart.New(logger, svc.Booking).ServeHTTP)
			r.Get("/booking", bookingcurrent.New(logger, svc.Booking).ServeHTTP)
			r.Delete("/booking", bookingcurrent.NewClear(logger, svc.Booking).ServeHTTP)

			r.Post("/checkout", checkoutbegin.New(logger, svc.Checkout, svc.Booking).ServeHTTP)
			r.Post("/checkout/{id}/proceed", checkoutproceed.New(logger, svc.Checkout).ServeHTTP)
			r.Post("/checkout/{id}/otp", checkoutotp.New(logger, svc.Checkout).ServeHTTP)
			r.Post("/checkout/{id}/cancel", checkoutcancel.New(logger, svc.Checkout).ServeHTTP)
			r.Get("/checkout/{id}", checkoutstatus.New(logger, svc.Checkout).ServeHTTP)

			r.Post("/stylist/ask", stylistask.New(logger, svc.Stylist).ServeHTTP)
			r.Get("/search", searchhandler.New(logger, svc.Search).ServeHTTP)

			r.Post("/nav/navigate", navnavigate.New(logger, svc.Nav).ServeHTTP)
			r.Post("/nav/back", navback.New(logger, svc.Nav).ServeHTTP)
			r.Get("/nav/state", navstate.New(logger, svc.Nav).ServeHTTP)

			r.Get("/settings/notifications", notifications.New(logger, svc.Settings).ServeHTTP)
			r.Put("/settings/notifications", notifications.NewSet(logger, svc.Settings).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
}
