package models

import "time"

const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

// Categories that represent money already in motion. Transactions in these
// categories are never candidates for rebalancing.
const (
	CategoryTransfer   = "transfer"
	CategorySettlement = "settlement"
)

type Transaction struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	AccountID *int64    `json:"accountId"`
	Account   *string   `json:"account"`
	Category  *string   `json:"category"`
	Amount    float64   `json:"amount"`
	Memo      *string   `json:"memo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
