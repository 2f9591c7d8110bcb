package rebalance

import (
	"context"
	"time"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/models"
)

// Store is everything the rebalance flows need from persistence. WithinTx
// hands the callback a Store bound to one database transaction; the commit
// batch runs entirely inside it so a failure rolls back every decision.
type Store interface {
	OverrideLookup

	TransactionsInRange(ctx context.Context, from, to time.Time) ([]models.Transaction, error)
	// TransactionByID returns (nil, nil) when the id does not exist.
	TransactionByID(ctx context.Context, id int64) (*models.Transaction, error)
	InsertTransaction(ctx context.Context, txn *models.Transaction) error
	UpdateTransactionAccount(ctx context.Context, id int64, accountID int64, account string) error

	// EnsureAccount resolves an account name to its id, creating the row on
	// first use.
	EnsureAccount(ctx context.Context, name string) (int64, error)

	AppliedTransactionIDs(ctx context.Context, month string) (map[int64]struct{}, error)
	InsertFeedback(ctx context.Context, rec *models.FeedbackRecord) error
	UpsertRule(ctx context.Context, category, patternKey, expectedAccount string) error

	WithinTx(ctx context.Context, fn func(Store) error) error
}
