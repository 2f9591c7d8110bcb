package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/db"
	"github.com/wo-ong-dev/my-budget-app-sub000/src/models"
	"github.com/wo-ong-dev/my-budget-app-sub000/src/util"
)

// RebalanceService is implemented by rebalance.Service.
type RebalanceService interface {
	Suggestions(ctx context.Context, month string) ([]models.RebalanceSuggestionItem, error)
	Commit(ctx context.Context, month string, decisions []models.RebalanceDecision) ([]models.RebalanceResult, error)
}

func rebalanceCacheKey(month string) string {
	return "rebalance:" + month
}

func GetRebalanceSuggestions(svc RebalanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")
		if !util.ValidateMonth(month) {
			respondError(w, http.StatusBadRequest, "month is required in YYYY-MM format")
			return
		}

		if cached, found := db.Cache.Get(rebalanceCacheKey(month)); found {
			if items, ok := cached.([]models.RebalanceSuggestionItem); ok {
				respondData(w, http.StatusOK, map[string]any{
					"month":       month,
					"total":       len(items),
					"suggestions": items,
				})
				return
			}
		}

		items, err := svc.Suggestions(r.Context(), month)
		if err != nil {
			log.Printf("ERROR: Failed to build rebalance suggestions for month %s: %v", month, err)
			respondError(w, http.StatusInternalServerError, "failed to build rebalance suggestions")
			return
		}
		db.SetRebalanceCache(rebalanceCacheKey(month), items)

		respondData(w, http.StatusOK, map[string]any{
			"month":       month,
			"total":       len(items),
			"suggestions": items,
		})
	}
}

func CommitRebalance(svc RebalanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Month     string                     `json:"month"`
			Decisions []models.RebalanceDecision `json:"decisions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode rebalance commit request body: %v", err)
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if !util.ValidateMonth(req.Month) {
			respondError(w, http.StatusBadRequest, "month is required in YYYY-MM format")
			return
		}
		if len(req.Decisions) == 0 {
			respondError(w, http.StatusBadRequest, "decisions must be a non-empty array")
			return
		}
		for _, d := range req.Decisions {
			if !util.ValidateDecision(d.Decision) {
				respondError(w, http.StatusBadRequest, "decision must be APPLY, DEFER or WRONG")
				return
			}
			if d.LearningScope != nil && !util.ValidateLearningScope(*d.LearningScope) {
				respondError(w, http.StatusBadRequest, "learningScope must be NONE, PATTERN or CATEGORY")
				return
			}
		}

		results, err := svc.Commit(r.Context(), req.Month, req.Decisions)
		if err != nil {
			// The batch transaction has already been rolled back.
			log.Printf("ERROR: Failed to commit rebalance decisions for month %s: %v", req.Month, err)
			respondError(w, http.StatusInternalServerError, "failed to commit rebalance decisions")
			return
		}

		log.Printf("INFO: Committed %d rebalance decisions for month %s", len(results), req.Month)
		db.ClearAllRebalanceCaches()
		db.ClearAllSettlementCaches()

		respondData(w, http.StatusOK, map[string]any{
			"month":   req.Month,
			"results": results,
		})
	}
}
