package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/hrplane/employee-management/internal"
	"github.com/hrplane/employee-management/internal/auth"
	"github.com/hrplane/employee-management/internal/employee"
	"github.com/hrplane/employee-management/internal/leave"
	"github.com/hrplane/employee-management/internal/transport/middleware"
	"github.com/hrplane/employee-management/internal/transport/swagger"
)

// RouterDeps bundles everything route registration needs.
type RouterDeps struct {
	Config          *internal.Config
	DB              *sql.DB
	AuthHandler     *auth.Handler
	EmployeeHandler *employee.Handler
	LeaveHandler    *leave.Handler
	Logger          *slog.Logger
}

// RegisterAllRoutes wires the full route table. Route-level guards follow a
// fixed order: authentication first, then the superuser check, so a bad
// token always yields 401 even on superuser-only routes.
func RegisterAllRoutes(router *chi.Mux, deps RouterDeps) {
	healthHandler := NewHealthHandler(deps.DB)

	router.Use(middleware.CORS(deps.Config.Server.AllowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(deps.Logger))
	router.Use(middleware.RecoveryMiddleware(deps.Logger))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Welcome to the Employee Management System!"}`))
	})

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Post("/token", deps.AuthHandler.Login)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/employees", func(er chi.Router) {
			// registration and listing mirror the upstream open behavior
			er.Post("/", deps.EmployeeHandler.CreateEmployee)
			er.Get("/", deps.EmployeeHandler.ListEmployees)

			er.Group(func(ir chi.Router) {
				// read/update/delete ship unguarded; the flag lets an
				// integrator opt in to requiring authentication
				if deps.Config.Security.ProtectEmployeeRoutes {
					ir.Use(deps.AuthHandler.AuthMiddleware)
				}
				ir.Get("/{id}", deps.EmployeeHandler.GetEmployee)
				ir.Put("/{id}", deps.EmployeeHandler.UpdateEmployee)
				ir.Delete("/{id}", deps.EmployeeHandler.DeleteEmployee)
			})
		})

		r.Group(func(pr chi.Router) {
			pr.Use(deps.AuthHandler.AuthMiddleware)

			pr.Route("/leave-requests", func(lr chi.Router) {
				lr.Post("/", deps.LeaveHandler.CreateLeaveRequest)
				lr.Get("/", deps.LeaveHandler.ListLeaveRequests)

				lr.Group(func(sr chi.Router) {
					sr.Use(deps.AuthHandler.RequireSuperuser)
					sr.Put("/{id}", deps.LeaveHandler.UpdateLeaveRequestStatus)
				})
			})
		})
	})
}
