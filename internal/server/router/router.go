package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wash-admin/internal/config"
	"wash-admin/internal/role"
	"wash-admin/internal/server/handler"
	"wash-admin/internal/server/middleware"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Booking *handler.BookingHandler
	Catalog *handler.CatalogHandler
	Review  *handler.ReviewHandler
	Staff   *handler.StaffHandler
}

func New(cfg *config.Server, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimit := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimit.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/auth", func(auth chi.Router) {
		auth.Post("/register", h.Auth.Register)
		auth.Post("/login", h.Auth.Login)
		auth.Post("/forgot-password", h.Auth.ForgotPassword)
		auth.Post("/reset-password", h.Auth.ResetPassword)
		auth.Post("/logout", h.Auth.Logout)
	})

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(authMiddleware.RequireAuth)

		api.Get("/me", h.Auth.Me)

		api.With(authMiddleware.RequireNavItem(role.NavBookings)).Route("/bookings", func(bookings chi.Router) {
			bookings.Get("/", h.Booking.List)
			bookings.Post("/", h.Booking.Create)
			bookings.Put("/{id}", h.Booking.Update)
			bookings.Delete("/{id}", h.Booking.Cancel)
		})

		api.With(authMiddleware.RequireNavItem(role.NavServices)).Route("/services", func(services chi.Router) {
			services.Get("/", h.Catalog.ListServices)
			services.Post("/", h.Catalog.CreateService)
			services.Put("/{id}", h.Catalog.UpdateService)
			services.Delete("/{id}", h.Catalog.DeleteService)
		})

		api.With(authMiddleware.RequireNavItem(role.NavMedia)).Route("/media", func(media chi.Router) {
			media.Get("/", h.Catalog.ListMedia)
			media.Delete("/{id}", h.Catalog.DeleteMedia)
		})

		api.With(authMiddleware.RequireNavItem(role.NavReviews)).Route("/reviews", func(reviews chi.Router) {
			reviews.Get("/", h.Review.ListReviews)
			reviews.Put("/{id}", h.Review.Moderate)
			reviews.Delete("/{id}", h.Review.DeleteReview)
		})

		api.With(authMiddleware.RequireNavItem(role.NavFeedback)).Route("/feedback", func(feedback chi.Router) {
			feedback.Get("/", h.Review.ListFeedback)
			feedback.Put("/{id}", h.Review.ResolveFeedback)
		})

		api.With(authMiddleware.RequireNavItem(role.NavStaff)).Route("/staff", func(staff chi.Router) {
			staff.Get("/", h.Staff.List)
			staff.Post("/", h.Staff.Create)
			staff.Put("/{id}/role", h.Staff.SetRole)
			staff.Delete("/{id}", h.Staff.Delete)
		})

		api.With(authMiddleware.RequireNavItem(role.NavAnalytics)).Get("/analytics/summary", h.Review.Summary)
	})

	return r
}
