package handlers

import (
	"log"
	"net/http"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/models"
	"github.com/wo-ong-dev/my-budget-app-sub000/src/util"
)

// GetBudgetUsage returns the budget-vs-actual rows for a month.
func GetBudgetUsage(svc SettlementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")
		if !util.ValidateMonth(month) {
			respondError(w, http.StatusBadRequest, "month is required in YYYY-MM format")
			return
		}

		usage, err := svc.Usage(r.Context(), month)
		if err != nil {
			log.Printf("ERROR: Failed to get budget usage for month %s: %v", month, err)
			respondError(w, http.StatusInternalServerError, "failed to get budget usage")
			return
		}
		if usage == nil {
			usage = make([]models.BudgetUsage, 0)
		}

		respondData(w, http.StatusOK, map[string]any{
			"month":   month,
			"budgets": usage,
		})
	}
}
