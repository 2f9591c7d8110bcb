package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// ExpectedAccount looks up the learned account for an exact (category,
// pattern key) pair. Returns nil when no rule exists. The unique constraint
// keeps this to one row; ordering is a guard for legacy duplicates.
func (s *Store) ExpectedAccount(ctx context.Context, category, patternKey string) (*string, error) {
	query := `
		SELECT expected_account
		FROM override_rules
		WHERE category = $1 AND pattern_key = $2
		ORDER BY confidence DESC, updated_at DESC
		LIMIT 1
	`
	var account string
	err := s.q.QueryRow(ctx, query, category, patternKey).Scan(&account)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// UpsertRule inserts a rule with confidence 1, or overwrites the expected
// account and bumps the confidence counter when the pair already exists.
func (s *Store) UpsertRule(ctx context.Context, category, patternKey, expectedAccount string) error {
	query := `
		INSERT INTO override_rules (category, pattern_key, expected_account)
		VALUES ($1, $2, $3)
		ON CONFLICT (category, pattern_key)
		DO UPDATE SET expected_account = EXCLUDED.expected_account,
		              confidence = override_rules.confidence + 1,
		              updated_at = NOW()
	`
	_, err := s.q.Exec(ctx, query, category, patternKey, expectedAccount)
	return err
}
