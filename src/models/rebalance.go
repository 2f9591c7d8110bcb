package models

import "time"

// RebalanceSuggestionItem is one entry of the suggestion list. It is built
// fresh on every request and never persisted.
type RebalanceSuggestionItem struct {
	TransactionID    int64     `json:"transactionId"`
	Date             time.Time `json:"date"`
	Type             string    `json:"type"`
	Amount           float64   `json:"amount"`
	Category         *string   `json:"category"`
	Memo             *string   `json:"memo"`
	Account          string    `json:"account"`
	SuggestedAccount string    `json:"suggestedAccount"`
	PatternKey       *string   `json:"patternKey"`
	Reason           string    `json:"reason"`
}

// RebalanceDecision is one user decision in a commit batch.
type RebalanceDecision struct {
	TransactionID int64   `json:"transactionId"`
	Decision      string  `json:"decision"`
	ChosenAccount *string `json:"chosenAccount,omitempty"`
	LearningScope *string `json:"learningScope,omitempty"`
}

// RebalanceResult reports the outcome of one decision. Applied is only set
// for APPLY decisions.
type RebalanceResult struct {
	TransactionID int64  `json:"transactionId"`
	Decision      string `json:"decision"`
	Applied       *bool  `json:"applied,omitempty"`
}
