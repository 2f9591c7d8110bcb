package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/db"
	"github.com/wo-ong-dev/my-budget-app-sub000/src/rebalance"
	"github.com/wo-ong-dev/my-budget-app-sub000/src/settlement"
)

var (
	_ rebalance.Store  = (*Store)(nil)
	_ settlement.Store = (*Store)(nil)
)

// Store runs raw SQL against the pool, or against a single pgx transaction
// for the duration of a WithinTx callback.
type Store struct {
	q    db.Querier
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{q: pool, pool: pool}
}

// WithinTx executes fn with a Store bound to one transaction. A non-nil
// error from fn rolls everything back; otherwise the transaction commits.
func (s *Store) WithinTx(ctx context.Context, fn func(rebalance.Store) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(&Store{q: tx, pool: s.pool}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
