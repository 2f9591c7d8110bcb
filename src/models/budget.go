package models

import "time"

type Budget struct {
	ID        int64     `json:"id"`
	Account   string    `json:"account"`
	Month     string    `json:"month"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BudgetUsage is one row of the budget-vs-actual view for a month.
// Available = Target - Used; negative means the account overspent.
type BudgetUsage struct {
	Account   string  `json:"account"`
	Target    float64 `json:"target"`
	Used      float64 `json:"used"`
	Available float64 `json:"available"`
}
