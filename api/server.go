/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the calculator frontend

ROUTE GROUPS:
  /api/calculations/*   The settlement calculators
  /api/tables           Statutory reference tables
  /api/health           Liveness
  /                     Plain endpoint index for humans

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/tables", h.GetTables)

		r.Route("/calculations", func(r chi.Router) {
			r.Post("/salary", h.SettleSalary)
			r.Post("/vacation", h.SettleVacation)
			r.Post("/overtime", h.SettleOvertime)
			r.Post("/termination", h.SettleTermination)
			r.Post("/contribution", h.LookupTaxes)
		})
	})

	// Plain index for anyone opening the server in a browser.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>CLT Payroll Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>CLT Payroll Engine API</h1>
<h2>API Endpoints</h2>
<ul>
<li>POST /api/calculations/salary - Monthly net-pay settlement</li>
<li>POST /api/calculations/vacation - Vacation settlement</li>
<li>POST /api/calculations/overtime - Overtime pricing</li>
<li>POST /api/calculations/termination - Termination severance</li>
<li>POST /api/calculations/contribution - Raw INSS/IRRF lookups</li>
<li><a href="/api/tables">/api/tables</a> - Statutory tables</li>
<li><a href="/api/health">/api/health</a> - Liveness</li>
</ul>
</body>
</html>`))
	})

	return r
}
