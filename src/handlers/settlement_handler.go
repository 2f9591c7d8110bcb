package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/db"
	"github.com/wo-ong-dev/my-budget-app-sub000/src/models"
	"github.com/wo-ong-dev/my-budget-app-sub000/src/util"
)

// SettlementService is implemented by settlement.Service.
type SettlementService interface {
	Usage(ctx context.Context, month string) ([]models.BudgetUsage, error)
	Plan(ctx context.Context, month string) (*models.SettlementPlan, error)
	Transfers(ctx context.Context, month string) ([]models.Transaction, error)
}

type settlementView struct {
	Suggestions []models.SettlementSuggestion `json:"suggestions"`
	Transfers   []models.Transaction          `json:"transfers"`
	Summary     models.SettlementSummary      `json:"summary"`
}

func settlementCacheKey(month string) string {
	return "settlement:" + month
}

func GetSettlements(svc SettlementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")
		if !util.ValidateMonth(month) {
			respondError(w, http.StatusBadRequest, "month is required in YYYY-MM format")
			return
		}

		if cached, found := db.Cache.Get(settlementCacheKey(month)); found {
			if view, ok := cached.(settlementView); ok {
				respondData(w, http.StatusOK, view)
				return
			}
		}

		plan, err := svc.Plan(r.Context(), month)
		if err != nil {
			log.Printf("ERROR: Failed to plan settlement for month %s: %v", month, err)
			respondError(w, http.StatusInternalServerError, "failed to plan settlement")
			return
		}
		transfers, err := svc.Transfers(r.Context(), month)
		if err != nil {
			log.Printf("ERROR: Failed to list transfers for month %s: %v", month, err)
			respondError(w, http.StatusInternalServerError, "failed to list transfers")
			return
		}
		if transfers == nil {
			transfers = make([]models.Transaction, 0)
		}

		view := settlementView{
			Suggestions: plan.Suggestions,
			Transfers:   transfers,
			Summary:     plan.Summary,
		}
		db.SetSettlementCache(settlementCacheKey(month), view)

		respondData(w, http.StatusOK, view)
	}
}
