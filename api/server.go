/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Logger:     Structured request logging (zap)
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Cross-origin requests for the listed front-end origins,
                 without credentials; none when no origin is configured

ROUTE GROUPS:
  /api/leave/*          Leave decisions and balances
  /api/attendance/*     Attendance post-processing
  /api/calendar/*       Non-working day lookup
  /healthz              Liveness

SECURITY NOTE:
  No authentication middleware. The service only previews decisions on
  data the caller already holds; the backend stays authoritative.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewRouter creates a new router with all routes configured.
// allowedOrigins feeds the CORS policy; empty allows none. Credentials are
// never allowed since the service has no authentication.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)
	// go-chi/cors treats an empty origin list as "any origin", so the
	// middleware is only mounted when origins are configured.
	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", h.Health)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/leave", func(r chi.Router) {
			r.Post("/evaluate", h.EvaluateLeave)
			r.Post("/balance", h.DeriveBalance)
			r.Post("/note", h.NoteForRequest)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/sandwich", h.ApplySandwich)
			r.Post("/allocate", h.AllocateLeave)
			r.Post("/summary", h.SummarizeAttendance)
		})

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/non-working", h.ListNonWorkingDays)
			r.Get("/holidays", h.ListHolidays)
		})
	})

	return r
}

// requestLogger logs one line per request with its status and duration.
func requestLogger(l *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				l.Info("http request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
