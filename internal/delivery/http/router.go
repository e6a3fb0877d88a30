package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"weddingrsvp/internal/delivery/http/controllers"
	"weddingrsvp/internal/delivery/http/middleware"
	"weddingrsvp/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	RSVP  *controllers.RSVPController
	Admin *controllers.AdminController
	Auth  *controllers.AuthController
}

// NewRouter initializes the HTTP router with all application routes.
// Admin routes require a bearer token accepted by verifier.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.RequireAuth(verifier, logger)

	// Guest
	mux.HandleFunc("POST /api/login", c.RSVP.Lookup)
	mux.HandleFunc("POST /api/rsvp", c.RSVP.Submit)

	// Auth
	mux.HandleFunc("POST /api/admin/login", c.Auth.Login)

	// Admin
	mux.HandleFunc("GET /api/events", admin(c.Admin.ListEvents))
	mux.HandleFunc("POST /api/events", admin(c.Admin.CreateEvent))
	mux.HandleFunc("GET /api/event-totals", admin(c.Admin.EventTotals))
	mux.HandleFunc("GET /api/event-guest-list", admin(c.Admin.EventGuestList))
	mux.HandleFunc("GET /api/event-guest-list.csv", admin(c.Admin.EventGuestListCSV))
	mux.HandleFunc("GET /api/rsvp-responses", admin(c.Admin.RSVPResponses))
	mux.HandleFunc("DELETE /api/rsvp/{guestID}", admin(c.RSVP.DeleteResponses))
	mux.HandleFunc("POST /api/upload-guests", admin(c.Admin.UploadGuests))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// WithMiddleware wraps the router with request id, access logging and CORS, outermost first.
func WithMiddleware(next http.Handler, allowedOrigins []string, logger *slog.Logger) http.Handler {
	return middleware.RequestID(middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, next)))
}
