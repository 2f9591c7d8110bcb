package rebalance

import (
	"context"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/models"
	"github.com/wo-ong-dev/my-budget-app-sub000/src/util"
)

type Service struct {
	store  Store
	engine *Engine
}

func NewService(store Store, engine *Engine) *Service {
	return &Service{store: store, engine: engine}
}

// Suggestions scans the month's expense transactions and reports every one
// whose resolved account differs from the account it was actually charged to.
// Transactions already settled through an APPLY decision, transactions in the
// transfer/settlement categories, and transactions without an account are
// skipped. Output preserves fetch order.
func (s *Service) Suggestions(ctx context.Context, month string) ([]models.RebalanceSuggestionItem, error) {
	from, to, err := util.MonthRange(month)
	if err != nil {
		return nil, err
	}

	txns, err := s.store.TransactionsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	applied, err := s.store.AppliedTransactionIDs(ctx, month)
	if err != nil {
		return nil, err
	}

	items := make([]models.RebalanceSuggestionItem, 0)
	for i := range txns {
		txn := &txns[i]
		if txn.Type != models.TypeExpense {
			continue
		}
		if txn.Account == nil || *txn.Account == "" {
			continue
		}
		if _, settled := applied[txn.ID]; settled {
			continue
		}
		if txn.Category != nil && (*txn.Category == models.CategoryTransfer || *txn.Category == models.CategorySettlement) {
			continue
		}

		suggestion, err := s.engine.Suggest(ctx, s.store, txn)
		if err != nil {
			return nil, err
		}
		if suggestion.Account == nil {
			continue
		}
		if *suggestion.Account == *txn.Account {
			continue
		}

		items = append(items, models.RebalanceSuggestionItem{
			TransactionID:    txn.ID,
			Date:             txn.Date,
			Type:             txn.Type,
			Amount:           txn.Amount,
			Category:         txn.Category,
			Memo:             txn.Memo,
			Account:          *txn.Account,
			SuggestedAccount: *suggestion.Account,
			PatternKey:       suggestion.PatternKey,
			Reason:           suggestion.Reason,
		})
	}
	return items, nil
}
