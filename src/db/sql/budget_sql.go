package db

import (
	"context"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/models"
	"github.com/wo-ong-dev/my-budget-app-sub000/src/util"
)

// BudgetUsageForMonth joins each budgeted account against the sum of its
// expense transactions for the month. Available is target minus used.
func (s *Store) BudgetUsageForMonth(ctx context.Context, month string) ([]models.BudgetUsage, error) {
	from, to, err := util.MonthRange(month)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT b.account, b.amount AS target, COALESCE(SUM(t.amount), 0) AS used
		FROM budgets b
		LEFT JOIN transactions t
			ON t.account = b.account
			AND t.type = $4
			AND t.transaction_date >= $2 AND t.transaction_date < $3
		WHERE b.month = $1
		GROUP BY b.account, b.amount
		ORDER BY b.account
	`
	rows, err := s.q.Query(ctx, query, month, from, to, models.TypeExpense)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usage []models.BudgetUsage
	for rows.Next() {
		var u models.BudgetUsage
		if err := rows.Scan(&u.Account, &u.Target, &u.Used); err != nil {
			return nil, err
		}
		u.Available = u.Target - u.Used
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

// TransfersForMonth lists ledger entries already categorized as transfer or
// settlement, so the settlement view can show money that is already moving.
func (s *Store) TransfersForMonth(ctx context.Context, month string) ([]models.Transaction, error) {
	from, to, err := util.MonthRange(month)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, transaction_date, type, account_id, account, category, amount, memo, created_at, updated_at
		FROM transactions
		WHERE transaction_date >= $1 AND transaction_date < $2
			AND category IN ($3, $4)
		ORDER BY transaction_date, id
	`
	rows, err := s.q.Query(ctx, query, from, to, models.CategoryTransfer, models.CategorySettlement)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.Date, &t.Type, &t.AccountID, &t.Account, &t.Category, &t.Amount, &t.Memo, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
