package rebalance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/models"
)

// Commit applies a batch of user decisions inside one database transaction.
// Decisions referencing transactions that no longer exist are skipped
// silently; any other failure aborts and rolls back the whole batch.
func (s *Service) Commit(ctx context.Context, month string, decisions []models.RebalanceDecision) ([]models.RebalanceResult, error) {
	results := make([]models.RebalanceResult, 0, len(decisions))
	batchID := uuid.New().String()

	err := s.store.WithinTx(ctx, func(store Store) error {
		for _, decision := range decisions {
			txn, err := store.TransactionByID(ctx, decision.TransactionID)
			if err != nil {
				return err
			}
			if txn == nil {
				// Concurrent edit or stale client state; not fatal.
				continue
			}

			// Recompute instead of trusting the client's copy.
			suggestion, err := s.engine.Suggest(ctx, store, txn)
			if err != nil {
				return err
			}

			if err := store.InsertFeedback(ctx, &models.FeedbackRecord{
				BatchID:          batchID,
				Month:            month,
				TransactionID:    txn.ID,
				OriginalAccount:  txn.Account,
				Category:         txn.Category,
				Memo:             txn.Memo,
				SuggestedAccount: suggestion.Account,
				Decision:         decision.Decision,
				CorrectedAccount: decision.ChosenAccount,
			}); err != nil {
				return err
			}

			learningKey := resolveLearningKey(decision, suggestion.PatternKey)
			if learningKey != nil && decision.ChosenAccount != nil && txn.Category != nil &&
				(decision.Decision == models.DecisionWrong || suggestion.Account == nil || *decision.ChosenAccount != *suggestion.Account) {
				if err := store.UpsertRule(ctx, *txn.Category, *learningKey, *decision.ChosenAccount); err != nil {
					return err
				}
			}

			result := models.RebalanceResult{
				TransactionID: txn.ID,
				Decision:      decision.Decision,
			}
			if decision.Decision == models.DecisionApply {
				applied, err := s.applyDecision(ctx, store, txn, decision, suggestion)
				if err != nil {
					return err
				}
				result.Applied = &applied
			}
			results = append(results, result)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// applyDecision records the correcting entry and retroactively reclassifies
// the original transaction onto the final account. Returns false without
// mutating the ledger when either side of the transfer is unknown.
func (s *Service) applyDecision(ctx context.Context, store Store, txn *models.Transaction, decision models.RebalanceDecision, suggestion *Suggestion) (bool, error) {
	finalAccount := decision.ChosenAccount
	if finalAccount == nil {
		finalAccount = suggestion.Account
	}
	if finalAccount == nil || txn.Account == nil || *txn.Account == "" {
		return false, nil
	}

	memo := fmt.Sprintf("transfer to %s (rebalance: %d)", *finalAccount, txn.ID)
	category := models.CategorySettlement
	correcting := &models.Transaction{
		Date:      txn.Date,
		Type:      models.TypeExpense,
		AccountID: txn.AccountID,
		Account:   txn.Account,
		Category:  &category,
		Amount:    txn.Amount,
		Memo:      &memo,
	}
	if err := store.InsertTransaction(ctx, correcting); err != nil {
		return false, err
	}

	accountID, err := store.EnsureAccount(ctx, *finalAccount)
	if err != nil {
		return false, err
	}
	if err := store.UpdateTransactionAccount(ctx, txn.ID, accountID, *finalAccount); err != nil {
		return false, err
	}
	return true, nil
}

// resolveLearningKey normalizes the decision's learning scope to a concrete
// override key. The scope defaults to PATTERN for WRONG decisions and NONE
// otherwise. PATTERN without an extractable key means no learning.
func resolveLearningKey(decision models.RebalanceDecision, patternKey *string) *string {
	scope := models.ScopeNone
	if decision.LearningScope != nil {
		scope = *decision.LearningScope
	} else if decision.Decision == models.DecisionWrong {
		scope = models.ScopePattern
	}

	switch scope {
	case models.ScopeCategory:
		wildcard := models.WildcardPatternKey
		return &wildcard
	case models.ScopePattern:
		return patternKey
	}
	return nil
}
