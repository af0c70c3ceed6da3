package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"aaelink/internal/pkg/auth/jwt"
	"aaelink/internal/pkg/limiter"
	"aaelink/internal/pkg/logx"
	"aaelink/internal/pkg/resp"
)

// Router sets up the HTTP routing table for the file service.
// ctx bounds background work owned by the router, such as rate limiter cleanup.
func Router(ctx context.Context, deps *AppDeps) http.Handler {
	uploadLimiter := limiter.NewIPRateLimiter(ctx, rate.Limit(deps.Config.UploadRate), deps.Config.UploadBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Location"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]string{
			"status":  "ok",
			"service": "AAELink File Service",
		})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/files", func(api chi.Router) {
		api.Use(jwt.IdentityExtractorMiddleware(deps.Config.JWTSecret))
		api.Use(jwt.RequireIdentity)

		api.With(uploadLimiter.Middleware).Post("/", HandleUploadFile(deps))
		api.With(uploadLimiter.Middleware).Post("/presign-upload", HandlePresignUploadURL(deps))
		api.Get("/url", HandleGetFileURL(deps))
		api.Get("/download", HandleDownloadFile(deps))
		api.Delete("/", HandleDeleteFile(deps))
	})

	return r
}
