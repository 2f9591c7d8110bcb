package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/handlers"
	"github.com/wo-ong-dev/my-budget-app-sub000/src/middleware"
)

func NewRouter(rebalanceSvc handlers.RebalanceService, settlementSvc handlers.SettlementService, allowedOrigins []string, readOnly bool) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(allowedOrigins))
	r.Use(middleware.ReadOnlyMiddleware(readOnly))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Get("/rebalance", handlers.GetRebalanceSuggestions(rebalanceSvc))
	r.Post("/rebalance/commit", handlers.CommitRebalance(rebalanceSvc))
	r.Get("/settlements", handlers.GetSettlements(settlementSvc))
	r.Get("/budgets/usage", handlers.GetBudgetUsage(settlementSvc))

	return r
}
