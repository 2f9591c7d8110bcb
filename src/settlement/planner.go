package settlement

import (
	"fmt"
	"math"
	"sort"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/models"
)

type bucket struct {
	account string
	amount  float64
}

// Plan pairs overspent accounts with under-budget accounts. Greedy matching:
// the largest shortfall is filled first, drawing from the largest remaining
// capacity first. Not transfer-count optimal; the ordering is a deliberate
// tie-break so output is deterministic for a given input.
func Plan(rows []models.BudgetUsage, balancedThreshold float64) *models.SettlementPlan {
	var shortfalls, capacities []bucket
	for _, row := range rows {
		switch {
		case row.Available < 0:
			shortfalls = append(shortfalls, bucket{account: row.Account, amount: -row.Available})
		case row.Available > 0:
			capacities = append(capacities, bucket{account: row.Account, amount: row.Available})
		}
	}

	sortDescending(shortfalls)
	sortDescending(capacities)

	var totalShortfall, totalCapacity float64
	for _, b := range shortfalls {
		totalShortfall += b.amount
	}
	for _, b := range capacities {
		totalCapacity += b.amount
	}

	suggestions := make([]models.SettlementSuggestion, 0)
	for i := range shortfalls {
		remaining := shortfalls[i].amount
		for j := range capacities {
			if remaining <= 0 {
				break
			}
			if capacities[j].amount <= 0 {
				continue
			}
			amount := math.Min(remaining, capacities[j].amount)
			suggestions = append(suggestions, models.SettlementSuggestion{
				FromAccount: capacities[j].account,
				ToAccount:   shortfalls[i].account,
				Amount:      amount,
				Reason:      fmt.Sprintf("cover %s budget overage", shortfalls[i].account),
			})
			remaining -= amount
			capacities[j].amount -= amount
		}
	}

	return &models.SettlementPlan{
		Suggestions: suggestions,
		Summary: models.SettlementSummary{
			TotalShortfall: totalShortfall,
			TotalCapacity:  totalCapacity,
			Balanced:       math.Abs(totalShortfall-totalCapacity) < balancedThreshold,
		},
	}
}

func sortDescending(buckets []bucket) {
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].amount != buckets[j].amount {
			return buckets[i].amount > buckets[j].amount
		}
		return buckets[i].account < buckets[j].account
	})
}
