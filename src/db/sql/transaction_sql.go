package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/models"
)

func (s *Store) TransactionsInRange(ctx context.Context, from, to time.Time) ([]models.Transaction, error) {
	query := `
		SELECT id, transaction_date, type, account_id, account, category, amount, memo, created_at, updated_at
		FROM transactions
		WHERE transaction_date >= $1 AND transaction_date < $2
		ORDER BY transaction_date, id
	`
	rows, err := s.q.Query(ctx, query, from, to)
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

func (s *Store) TransactionByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `
		SELECT id, transaction_date, type, account_id, account, category, amount, memo, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`
	var t models.Transaction
	err := s.q.QueryRow(ctx, query, id).
		Scan(&t.ID, &t.Date, &t.Type, &t.AccountID, &t.Account, &t.Category, &t.Amount, &t.Memo, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) InsertTransaction(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_date, type, account_id, account, category, amount, memo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	return s.q.QueryRow(ctx, query, txn.Date, txn.Type, txn.AccountID, txn.Account, txn.Category, txn.Amount, txn.Memo).
		Scan(&txn.ID, &txn.CreatedAt, &txn.UpdatedAt)
}

func (s *Store) UpdateTransactionAccount(ctx context.Context, id int64, accountID int64, account string) error {
	query := `
		UPDATE transactions
		SET account_id = $1, account = $2, updated_at = NOW()
		WHERE id = $3
	`
	_, err := s.q.Exec(ctx, query, accountID, account, id)
	return err
}
