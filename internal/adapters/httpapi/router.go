package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the API HTTP router.
//
// This is intentionally a thin adapter: handlers decode path/query inputs,
// delegate to the query service, and encode JSON. Every route is a GET; the
// roster is read-only.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	// Baseline production-safe middleware (minimal but useful).
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Health endpoint for infra checks.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/members", func(r chi.Router) {
		r.Get("/", s.handleListMembers)
		r.Get("/royalty", s.handleRoyaltyPartition)
		r.Get("/by-house", s.handleMembersByHouse)
		r.Get("/count-by-house", s.handleCountByHouse)
		r.Get("/salary/average", s.handleAverageSalary)
		r.Get("/salary/highest", s.handleHighestSalary)
		r.Get("/{id}", s.handleGetMember)
	})

	r.Route("/houses/{house}", func(r chi.Router) {
		r.Get("/members", s.handleHouseMembers)
		r.Get("/names", s.handleHouseNames)
		r.Get("/count", s.handleHouseCount)
		r.Get("/stats", s.handleHouseStats)
		r.Get("/top-earners", s.handleTopEarners)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/lannisters", s.handleLannisters)
		r.Get("/starting-with-s", s.handleStartingWithS)
		r.Get("/kings", s.handleKings)
		r.Get("/by-house-then-name", s.handleByHouseThenName)
		r.Get("/salary-below", s.handleSalaryBelow)
	})

	return r
}
