package rebalance

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/models"
)

func TestCommitSkipsStaleTransactionIDs(t *testing.T) {
	store := newMockStore()
	store.txns = []models.Transaction{
		storedTxn(1, models.TypeExpense, "국민은행", "식비", "버거킹 점심"),
	}
	svc := newTestService(store)

	results, err := svc.Commit(context.Background(), "2025-07", []models.RebalanceDecision{
		{TransactionID: 999, Decision: models.DecisionApply},
		{TransactionID: 1, Decision: models.DecisionDefer},
	})
	require.NoError(t, err)

	// The stale decision is absent from results and left no feedback.
	require.Len(t, results, 1)
	assert.Equal(t, int64(1), results[0].TransactionID)
	assert.Equal(t, models.DecisionDefer, results[0].Decision)
	require.Len(t, store.feedback, 1)
	assert.Equal(t, int64(1), store.feedback[0].TransactionID)
}

func TestCommitApplyCreatesCorrectingEntryAndReclassifies(t *testing.T) {
	store := newMockStore()
	store.txns = []models.Transaction{
		storedTxn(1, models.TypeExpense, "국민은행", "식비", "버거킹 점심"),
	}
	svc := newTestService(store)

	results, err := svc.Commit(context.Background(), "2025-07", []models.RebalanceDecision{
		{TransactionID: 1, Decision: models.DecisionApply},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Applied)
	assert.True(t, *results[0].Applied)

	// Correcting entry: money leaving the original account's ledger.
	require.Len(t, store.inserted, 1)
	correcting := store.inserted[0]
	assert.Equal(t, models.TypeExpense, correcting.Type)
	require.NotNil(t, correcting.Account)
	assert.Equal(t, "국민은행", *correcting.Account)
	require.NotNil(t, correcting.Category)
	assert.Equal(t, models.CategorySettlement, *correcting.Category)
	assert.Equal(t, float64(10000), correcting.Amount)
	require.NotNil(t, correcting.Memo)
	assert.Equal(t, fmt.Sprintf("transfer to 토스뱅크 (rebalance: %d)", 1), *correcting.Memo)

	// Original transaction reclassified onto the suggested account.
	require.Len(t, store.updates, 1)
	assert.Equal(t, int64(1), store.updates[0].transactionID)
	assert.Equal(t, "토스뱅크", store.updates[0].account)
	assert.Equal(t, store.accountIDs["토스뱅크"], store.updates[0].accountID)
}

func TestCommitApplyWithoutTargetAccountIsNotApplied(t *testing.T) {
	store := newMockStore()
	// Category with no default and no override: suggestion is nil.
	store.txns = []models.Transaction{
		storedTxn(1, models.TypeExpense, "국민은행", "기타", "무언가"),
	}
	svc := newTestService(store)

	results, err := svc.Commit(context.Background(), "2025-07", []models.RebalanceDecision{
		{TransactionID: 1, Decision: models.DecisionApply},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Applied)
	assert.False(t, *results[0].Applied)
	assert.Empty(t, store.inserted)
	assert.Empty(t, store.updates)

	// Feedback is still written for the decision.
	require.Len(t, store.feedback, 1)
}

func TestCommitApplyChosenAccountOverridesSuggestion(t *testing.T) {
	store := newMockStore()
	store.txns = []models.Transaction{
		storedTxn(1, models.TypeExpense, "국민은행", "식비", "버거킹 점심"),
	}
	svc := newTestService(store)

	chosen := "신용카드"
	results, err := svc.Commit(context.Background(), "2025-07", []models.RebalanceDecision{
		{TransactionID: 1, Decision: models.DecisionApply, ChosenAccount: &chosen},
	})
	require.NoError(t, err)
	require.NotNil(t, results[0].Applied)
	assert.True(t, *results[0].Applied)
	require.Len(t, store.updates, 1)
	assert.Equal(t, "신용카드", store.updates[0].account)

	// APPLY defaults to scope NONE, so the disagreement alone creates no rule.
	assert.Empty(t, store.upserts)
}

func TestCommitApplyWithPatternScopeLearnsFromDisagreement(t *testing.T) {
	store := newMockStore()
	store.txns = []models.Transaction{
		storedTxn(1, models.TypeExpense, "국민은행", "식비", "버거킹 점심"),
	}
	svc := newTestService(store)

	chosen := "신용카드"
	scope := models.ScopePattern
	_, err := svc.Commit(context.Background(), "2025-07", []models.RebalanceDecision{
		{TransactionID: 1, Decision: models.DecisionApply, ChosenAccount: &chosen, LearningScope: &scope},
	})
	require.NoError(t, err)
	require.Len(t, store.upserts, 1)
	assert.Equal(t, upsertCall{category: "식비", patternKey: "버거킹", expectedAccount: "신용카드"}, store.upserts[0])
}

func TestCommitApplyChosenMatchingSuggestionDoesNotLearn(t *testing.T) {
	store := newMockStore()
	store.txns = []models.Transaction{
		storedTxn(1, models.TypeExpense, "국민은행", "식비", "버거킹 점심"),
	}
	svc := newTestService(store)

	chosen := "토스뱅크" // same as the default-mapping suggestion
	scope := models.ScopePattern
	_, err := svc.Commit(context.Background(), "2025-07", []models.RebalanceDecision{
		{TransactionID: 1, Decision: models.DecisionApply, ChosenAccount: &chosen, LearningScope: &scope},
	})
	require.NoError(t, err)
	assert.Empty(t, store.upserts)
}

func TestCommitCategoryScopeLearnsWildcardRule(t *testing.T) {
	store := newMockStore()
	store.txns = []models.Transaction{
		storedTxn(1, models.TypeExpense, "국민은행", "식비", "버거킹 점심"),
	}
	svc := newTestService(store)

	chosen := "신용카드"
	scope := models.ScopeCategory
	_, err := svc.Commit(context.Background(), "2025-07", []models.RebalanceDecision{
		{TransactionID: 1, Decision: models.DecisionWrong, ChosenAccount: &chosen, LearningScope: &scope},
	})
	require.NoError(t, err)
	require.Len(t, store.upserts, 1)
	assert.Equal(t, models.WildcardPatternKey, store.upserts[0].patternKey)
}

func TestCommitWrongWithoutChosenAccountDoesNotLearn(t *testing.T) {
	store := newMockStore()
	store.txns = []models.Transaction{
		storedTxn(1, models.TypeExpense, "국민은행", "식비", "버거킹 점심"),
	}
	svc := newTestService(store)

	results, err := svc.Commit(context.Background(), "2025-07", []models.RebalanceDecision{
		{TransactionID: 1, Decision: models.DecisionWrong},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Applied)
	assert.Empty(t, store.upserts)
	assert.Empty(t, store.inserted)
	require.Len(t, store.feedback, 1)
	assert.Equal(t, models.DecisionWrong, store.feedback[0].Decision)
}

func TestCommitFeedbackCapturesSuggestionAndCorrection(t *testing.T) {
	store := newMockStore()
	store.txns = []models.Transaction{
		storedTxn(1, models.TypeExpense, "국민은행", "식비", "버거킹 점심"),
	}
	svc := newTestService(store)

	chosen := "신용카드"
	_, err := svc.Commit(context.Background(), "2025-07", []models.RebalanceDecision{
		{TransactionID: 1, Decision: models.DecisionWrong, ChosenAccount: &chosen},
	})
	require.NoError(t, err)

	require.Len(t, store.feedback, 1)
	rec := store.feedback[0]
	assert.NotEmpty(t, rec.BatchID)
	assert.Equal(t, "2025-07", rec.Month)
	require.NotNil(t, rec.OriginalAccount)
	assert.Equal(t, "국민은행", *rec.OriginalAccount)
	require.NotNil(t, rec.SuggestedAccount)
	assert.Equal(t, "토스뱅크", *rec.SuggestedAccount)
	require.NotNil(t, rec.CorrectedAccount)
	assert.Equal(t, "신용카드", *rec.CorrectedAccount)
}

func TestCommitBatchRollsBackOnStoreError(t *testing.T) {
	store := newMockStore()
	store.txns = []models.Transaction{
		storedTxn(1, models.TypeExpense, "국민은행", "식비", "버거킹 점심"),
		storedTxn(2, models.TypeExpense, "국민은행", "식비", "김밥천국 저녁"),
	}
	store.errOnFeedbackCall = 2
	svc := newTestService(store)

	results, err := svc.Commit(context.Background(), "2025-07", []models.RebalanceDecision{
		{TransactionID: 1, Decision: models.DecisionApply},
		{TransactionID: 2, Decision: models.DecisionApply},
	})
	assert.ErrorIs(t, err, errStoreUnavailable)
	assert.Nil(t, results)
	assert.True(t, store.rolledBack)
}

func TestCommitDecisionsShareOneBatchID(t *testing.T) {
	store := newMockStore()
	store.txns = []models.Transaction{
		storedTxn(1, models.TypeExpense, "국민은행", "식비", "버거킹 점심"),
		storedTxn(2, models.TypeExpense, "국민은행", "식비", "김밥천국 저녁"),
	}
	svc := newTestService(store)

	_, err := svc.Commit(context.Background(), "2025-07", []models.RebalanceDecision{
		{TransactionID: 1, Decision: models.DecisionDefer},
		{TransactionID: 2, Decision: models.DecisionDefer},
	})
	require.NoError(t, err)
	require.Len(t, store.feedback, 2)
	assert.Equal(t, store.feedback[0].BatchID, store.feedback[1].BatchID)
}
