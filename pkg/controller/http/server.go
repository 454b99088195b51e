package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/taskops-lab/riskregister/pkg/usecase"
	"github.com/taskops-lab/riskregister/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	r.Use(actingUser)

	r.Get("/health", healthHandler)

	r.Route("/api/projects/{projectID}", func(r chi.Router) {
		r.Get("/role", s.getRole)
		r.Get("/matrix", s.getMatrix)

		r.Route("/risks", func(r chi.Router) {
			r.Post("/", s.createRisk)
			r.Get("/", s.listRisks)

			r.Route("/{riskID}", func(r chi.Router) {
				r.Get("/", s.getRisk)
				r.Patch("/", s.updateRisk)
				r.Delete("/", s.deleteRisk)

				r.Get("/analyses", s.listAnalyses)
				r.Post("/analyses", s.createReassessment)

				r.Get("/plans", s.listPlans)
				r.Post("/plans", s.createPlan)
				r.Patch("/plans/{planID}", s.updatePlan)
			})
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
