package settlement

import (
	"context"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/models"
)

// Store is the read-only slice of persistence the settlement views consume.
type Store interface {
	BudgetUsageForMonth(ctx context.Context, month string) ([]models.BudgetUsage, error)
	TransfersForMonth(ctx context.Context, month string) ([]models.Transaction, error)
}

type Service struct {
	store             Store
	balancedThreshold float64
}

func NewService(store Store, balancedThreshold float64) *Service {
	return &Service{store: store, balancedThreshold: balancedThreshold}
}

// Usage returns the budget-vs-actual rows for a month.
func (s *Service) Usage(ctx context.Context, month string) ([]models.BudgetUsage, error) {
	return s.store.BudgetUsageForMonth(ctx, month)
}

// Plan computes transfer suggestions from the month's budget deltas.
func (s *Service) Plan(ctx context.Context, month string) (*models.SettlementPlan, error) {
	rows, err := s.store.BudgetUsageForMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	return Plan(rows, s.balancedThreshold), nil
}

// Transfers lists the month's ledger entries already categorized as
// transfer or settlement.
func (s *Service) Transfers(ctx context.Context, month string) ([]models.Transaction, error) {
	return s.store.TransfersForMonth(ctx, month)
}
