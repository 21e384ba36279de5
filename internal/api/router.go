package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/pcbstore/ops-console/internal/api/handlers"
	"github.com/pcbstore/ops-console/internal/api/middleware"
	"github.com/pcbstore/ops-console/internal/audit"
	"github.com/pcbstore/ops-console/internal/auth"
	"github.com/pcbstore/ops-console/internal/cache"
	"github.com/pcbstore/ops-console/internal/config"
	"github.com/pcbstore/ops-console/internal/identity"
	"github.com/pcbstore/ops-console/internal/prompt"
	"github.com/pcbstore/ops-console/internal/report"
)

type Router struct {
	mux   *chi.Mux
	db    *pgxpool.Pool
	redis *redis.Client
	cfg   *config.Config
	users *identity.Service
	jwt   *auth.JWTMiddleware
}

func NewRouter(db *pgxpool.Pool, rdb *redis.Client, cfg *config.Config) *Router {
	users := identity.NewService(db)
	return &Router{
		mux:   chi.NewRouter(),
		db:    db,
		redis: rdb,
		cfg:   cfg,
		users: users,
		jwt:   auth.NewJWTMiddleware(cfg.Auth.JWTSecret, users),
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))

	rl := middleware.NewRateLimiter(100, 200)
	r.Use(rl.Limit)

	// Health endpoints (no auth)
	health := handlers.NewHealthHandler(rt.db, rt.redis)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	// Services
	queryTimeout := rt.cfg.Database.QueryTimeout
	reportStore := report.NewPgStore(rt.db, queryTimeout)
	reportSvc := report.NewService(reportStore, cache.NewCache(rt.redis), rt.cfg.Cache.DailyReportTTL)
	promptStore := prompt.NewStore(rt.db, queryTimeout)
	auditSvc := audit.NewService(rt.db, queryTimeout)

	// API v1 — everything below is user-scoped and requires a valid token
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rt.jwt.Authenticate)

		reportH := handlers.NewReportHandler(reportSvc, auditSvc)
		r.Route("/reports", func(r chi.Router) {
			r.Post("/hourly", reportH.CreateHourly)
			r.Get("/hourly", reportH.ListHourly)
			r.Put("/hourly/{id}", reportH.UpdateHourly)
			r.Delete("/hourly/{id}", reportH.DeleteHourly)
			r.Get("/daily", reportH.ListDaily)
			r.Get("/daily/{date}", reportH.GetDaily)
		})

		promptH := handlers.NewPromptHandler(promptStore, auditSvc)
		r.Route("/prompts", func(r chi.Router) {
			r.Get("/", promptH.GetProduct)
			r.Post("/", promptH.SaveProduct)
			r.Delete("/", promptH.ResetProduct)
			r.Delete("/main", promptH.ResetMainPrompt)
			r.Delete("/static", promptH.ResetStaticPrompt)
			r.Post("/render", promptH.RenderProduct)
		})
		r.Route("/category-prompts", func(r chi.Router) {
			r.Get("/", promptH.GetCategory)
			r.Post("/", promptH.SaveCategory)
			r.Delete("/", promptH.ResetCategory)
			r.Delete("/prompt1", promptH.ResetCategoryPrompt1)
			r.Delete("/prompt2", promptH.ResetCategoryPrompt2)
			r.Post("/render", promptH.RenderCategory)
		})

		auditH := handlers.NewAuditHandler(auditSvc)
		r.Get("/audit", auditH.List)
	})

	return r
}
