package models

import "time"

const (
	DecisionApply = "APPLY"
	DecisionDefer = "DEFER"
	DecisionWrong = "WRONG"
)

const (
	ScopeNone     = "NONE"
	ScopePattern  = "PATTERN"
	ScopeCategory = "CATEGORY"
)

// FeedbackRecord is one row of the append-only rebalance audit log. Records
// from the same commit batch share a batch id. The inference engine never
// reads this table back; only the APPLY decisions are consulted to keep
// settled transactions out of future suggestion lists.
type FeedbackRecord struct {
	ID               int64     `json:"id"`
	BatchID          string    `json:"batchId"`
	Month            string    `json:"month"`
	TransactionID    int64     `json:"transactionId"`
	OriginalAccount  *string   `json:"originalAccount"`
	Category         *string   `json:"category"`
	Memo             *string   `json:"memo"`
	SuggestedAccount *string   `json:"suggestedAccount"`
	Decision         string    `json:"decision"`
	CorrectedAccount *string   `json:"correctedAccount"`
	CreatedAt        time.Time `json:"createdAt"`
}
