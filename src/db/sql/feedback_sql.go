package db

import (
	"context"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/models"
)

func (s *Store) InsertFeedback(ctx context.Context, rec *models.FeedbackRecord) error {
	query := `
		INSERT INTO rebalance_feedback
			(batch_id, month, transaction_id, original_account, category, memo, suggested_account, decision, corrected_account)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	return s.q.QueryRow(ctx, query,
		rec.BatchID, rec.Month, rec.TransactionID, rec.OriginalAccount, rec.Category,
		rec.Memo, rec.SuggestedAccount, rec.Decision, rec.CorrectedAccount,
	).Scan(&rec.ID, &rec.CreatedAt)
}

// AppliedTransactionIDs returns the ids already settled through an APPLY
// decision in the given month. These never resurface in suggestion lists.
func (s *Store) AppliedTransactionIDs(ctx context.Context, month string) (map[int64]struct{}, error) {
	query := `
		SELECT DISTINCT transaction_id
		FROM rebalance_feedback
		WHERE month = $1 AND decision = $2
	`
	rows, err := s.q.Query(ctx, query, month, models.DecisionApply)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}
