package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/ucad-dsi/gestion-budget/internal/analysis"
	"github.com/ucad-dsi/gestion-budget/internal/auth"
	"github.com/ucad-dsi/gestion-budget/internal/budget"
	"github.com/ucad-dsi/gestion-budget/internal/category"
	"github.com/ucad-dsi/gestion-budget/internal/report"
	"github.com/ucad-dsi/gestion-budget/internal/transport/middleware"
	"github.com/ucad-dsi/gestion-budget/internal/transport/swagger"
	"github.com/ucad-dsi/gestion-budget/internal/user"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	categoryHandler *category.Handler,
	budgetHandler *budget.Handler,
	analysisHandler *analysis.Handler,
	reportHandler *report.Handler,
	userHandler *user.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// OpenAPI spec and Swagger UI live outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
			sr.Post("/refresh", authHandler.RefreshToken)
			sr.Post("/logout", authHandler.Logout)
		})

		// Chart of accounts is readable without a session
		r.Get("/budget-categories", categoryHandler.GetAll)

		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Get("/auth/me", authHandler.Me)

			pr.Route("/budget-lines", func(br chi.Router) {
				br.Post("/", budgetHandler.Create)
				br.Get("/", budgetHandler.List)
				br.Get("/{id}", budgetHandler.Get)
				br.Patch("/{id}", budgetHandler.Update)
				br.Delete("/{id}", budgetHandler.Delete)
				br.Post("/{id}/submit", budgetHandler.Submit)
				br.Get("/{id}/history", budgetHandler.History)
			})

			pr.Group(func(cr chi.Router) {
				cr.Use(authHandler.RequireAction(auth.ActionModerateLines))
				cr.Get("/consolidation/pending", budgetHandler.ListPending)
				cr.Post("/consolidation/validate/{id}", budgetHandler.Validate)
				cr.Post("/consolidation/bulk-validate", budgetHandler.BulkValidate)
			})

			pr.Group(func(ur chi.Router) {
				ur.Use(authHandler.RequireAction(auth.ActionManageUsers))
				ur.Get("/users", userHandler.List)
				ur.Post("/users", userHandler.Create)
			})

			pr.Route("/budget-analysis", func(ar chi.Router) {
				ar.Get("/summary/{year}", analysisHandler.Summary)
				ar.Get("/variances/{year}", analysisHandler.Variances)
			})

			pr.Route("/reports", func(rr chi.Router) {
				rr.Post("/generate", reportHandler.Generate)
				rr.Get("/", reportHandler.List)
				rr.Get("/{id}/download", reportHandler.Download)
				rr.Delete("/{id}", reportHandler.Delete)
			})
		})
	})
}
