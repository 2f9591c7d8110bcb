package rebalance

import (
	"context"
	"fmt"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/models"
)

// ReasonNoRule is returned when no resolver produced a suggestion.
const ReasonNoRule = "no rule available, deferred"

// OverrideLookup is the read side of the learned override rule store.
type OverrideLookup interface {
	ExpectedAccount(ctx context.Context, category, patternKey string) (*string, error)
}

// Suggestion is the outcome of resolving one transaction. Account is nil when
// no rule matched.
type Suggestion struct {
	Account    *string
	PatternKey *string
	Reason     string
}

type resolver func(ctx context.Context, overrides OverrideLookup, txn *models.Transaction, patternKey *string) (*Suggestion, error)

// Engine resolves the account a transaction should have been charged to. The
// resolver list encodes the precedence order: pattern-specific override, then
// category-wide override, then the static default table. Reordering the list
// changes behavior.
type Engine struct {
	defaults  map[string]string
	maxKeyLen int
	resolvers []resolver
}

func NewEngine(defaults map[string]string, maxKeyLen int) *Engine {
	e := &Engine{
		defaults:  defaults,
		maxKeyLen: maxKeyLen,
	}
	e.resolvers = []resolver{
		e.resolvePatternOverride,
		e.resolveCategoryOverride,
		e.resolveCategoryDefault,
	}
	return e
}

// Suggest runs the resolvers in order and returns the first match. A miss is
// not an error: the returned suggestion carries a nil account and the
// deferred reason.
func (e *Engine) Suggest(ctx context.Context, overrides OverrideLookup, txn *models.Transaction) (*Suggestion, error) {
	patternKey := ExtractPatternKey(txn.Memo, e.maxKeyLen)
	for _, resolve := range e.resolvers {
		s, err := resolve(ctx, overrides, txn, patternKey)
		if err != nil {
			return nil, err
		}
		if s != nil {
			s.PatternKey = patternKey
			return s, nil
		}
	}
	return &Suggestion{PatternKey: patternKey, Reason: ReasonNoRule}, nil
}

func (e *Engine) resolvePatternOverride(ctx context.Context, overrides OverrideLookup, txn *models.Transaction, patternKey *string) (*Suggestion, error) {
	if txn.Category == nil || patternKey == nil {
		return nil, nil
	}
	account, err := overrides.ExpectedAccount(ctx, *txn.Category, *patternKey)
	if err != nil || account == nil {
		return nil, err
	}
	return &Suggestion{
		Account: account,
		Reason:  fmt.Sprintf("learned rule applied (%s/%s)", *txn.Category, *patternKey),
	}, nil
}

func (e *Engine) resolveCategoryOverride(ctx context.Context, overrides OverrideLookup, txn *models.Transaction, _ *string) (*Suggestion, error) {
	if txn.Category == nil {
		return nil, nil
	}
	account, err := overrides.ExpectedAccount(ctx, *txn.Category, models.WildcardPatternKey)
	if err != nil || account == nil {
		return nil, err
	}
	return &Suggestion{
		Account: account,
		Reason:  fmt.Sprintf("learned rule applied (%s/%s)", *txn.Category, models.WildcardPatternKey),
	}, nil
}

func (e *Engine) resolveCategoryDefault(_ context.Context, _ OverrideLookup, txn *models.Transaction, _ *string) (*Suggestion, error) {
	if txn.Category == nil {
		return nil, nil
	}
	account, ok := e.defaults[*txn.Category]
	if !ok {
		return nil, nil
	}
	return &Suggestion{
		Account: &account,
		Reason:  fmt.Sprintf("default mapping applied (%s)", *txn.Category),
	}, nil
}
