// Package api serves the engine over HTTP with chi. Sessions are HS256
// bearer tokens; the doctor-only routes check the role claim.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"vitacoach/internal/engine"
	"vitacoach/internal/logging"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	router *chi.Mux
	svc    *engine.Service
	tokens *TokenManager
	log    logging.Logger
}

func New(svc *engine.Service, tokens *TokenManager, log logging.Logger) *Server {
	s := &Server{svc: svc, tokens: tokens, log: log}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(requestLogger(log))
	router.Use(chimiddleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api", func(r chi.Router) {
		r.Post("/register", s.register)
		r.Post("/login", s.login)

		r.Get("/literature", s.listLiterature)
		r.Get("/supplements", s.listSupplements)
		r.Get("/biomarkers", s.listBiomarkers)
		r.Get("/plans", s.listPlans)
		r.Get("/plans/{id}", s.getPlan)
		r.Get("/anti-charities", s.listAntiCharities)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(tokens, svc))

			r.Post("/logout", s.logout)
			r.Post("/role", s.switchRole)
			r.Get("/state", s.summary)
			r.Put("/profile", s.updateProfile)
			r.Post("/onboarding", s.advanceOnboarding)

			r.Post("/checkins", s.checkIn)
			r.Get("/streak", s.streak)
			r.Get("/badges", s.badges)
			r.Get("/xp/history", s.xpHistory)

			r.Get("/challenges", s.listChallenges)
			r.Post("/challenges/{id}/join", s.joinChallenge)
			r.Post("/challenges/{id}/leave", s.leaveChallenge)

			r.Put("/accountability/partner", s.setPartner)
			r.Put("/accountability/contract", s.setContract)
			r.Delete("/accountability/contract", s.clearContract)

			r.Post("/uploads", s.uploadLabReport)
			r.Get("/calendar.ics", s.calendarFeed)

			r.Group(func(r chi.Router) {
				r.Use(RequireRole(engine.RoleDoctor))

				r.Get("/patients", s.listPatients)
				r.Get("/patients/{id}", s.getPatient)
				r.Get("/patients/{id}/labs", s.patientLabs)
				r.Get("/genetics", s.listGenetics)
			})
		})
	})

	s.router = router
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "starting server", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	s.log.Info(shutdownCtx, "shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
