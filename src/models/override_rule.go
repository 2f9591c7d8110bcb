package models

import "time"

// WildcardPatternKey matches any pattern within a category.
const WildcardPatternKey = "*"

// OverrideRule is a learned mapping from (category, pattern key) to the
// account a transaction should have been charged to. At most one rule exists
// per (category, pattern_key) pair; reinforcement bumps the confidence
// counter and overwrites the expected account.
type OverrideRule struct {
	ID              int64     `json:"id"`
	Category        string    `json:"category"`
	PatternKey      string    `json:"patternKey"`
	ExpectedAccount string    `json:"expectedAccount"`
	Confidence      int       `json:"confidence"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
