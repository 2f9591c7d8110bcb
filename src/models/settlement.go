package models

// SettlementSuggestion proposes one inter-account transfer. Recomputed on
// every settlement view request, never persisted.
type SettlementSuggestion struct {
	FromAccount string  `json:"fromAccount"`
	ToAccount   string  `json:"toAccount"`
	Amount      float64 `json:"amount"`
	Reason      string  `json:"reason"`
}

type SettlementSummary struct {
	TotalShortfall float64 `json:"totalShortfall"`
	TotalCapacity  float64 `json:"totalCapacity"`
	Balanced       bool    `json:"balanced"`
}

type SettlementPlan struct {
	Suggestions []SettlementSuggestion `json:"suggestions"`
	Summary     SettlementSummary      `json:"summary"`
}
