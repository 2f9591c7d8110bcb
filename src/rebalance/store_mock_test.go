package rebalance

import (
	"context"
	"time"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/models"
)

type upsertCall struct {
	category        string
	patternKey      string
	expectedAccount string
}

type accountUpdate struct {
	transactionID int64
	accountID     int64
	account       string
}

// mockStore is an in-memory rebalance.Store. Individual operations can be
// made to fail through the err* fields; WithinTx records whether the batch
// callback came back with an error (a rollback at the database layer).
type mockStore struct {
	txns    []models.Transaction
	applied map[int64]struct{}
	rules   map[string]string // "category|patternKey" -> account

	feedback   []models.FeedbackRecord
	upserts    []upsertCall
	inserted   []models.Transaction
	updates    []accountUpdate
	accountIDs map[string]int64
	nextID     int64

	errOnFeedbackCall int // 1-based call number that fails; 0 = never
	feedbackCalls     int
	rolledBack        bool
}

func newMockStore() *mockStore {
	return &mockStore{
		applied:    make(map[int64]struct{}),
		rules:      make(map[string]string),
		accountIDs: make(map[string]int64),
		nextID:     1000,
	}
}

func (m *mockStore) ExpectedAccount(_ context.Context, category, patternKey string) (*string, error) {
	if account, ok := m.rules[category+"|"+patternKey]; ok {
		return &account, nil
	}
	return nil, nil
}

func (m *mockStore) TransactionsInRange(_ context.Context, _, _ time.Time) ([]models.Transaction, error) {
	return m.txns, nil
}

func (m *mockStore) TransactionByID(_ context.Context, id int64) (*models.Transaction, error) {
	for i := range m.txns {
		if m.txns[i].ID == id {
			return &m.txns[i], nil
		}
	}
	return nil, nil
}

func (m *mockStore) InsertTransaction(_ context.Context, txn *models.Transaction) error {
	m.nextID++
	txn.ID = m.nextID
	m.inserted = append(m.inserted, *txn)
	return nil
}

func (m *mockStore) UpdateTransactionAccount(_ context.Context, id int64, accountID int64, account string) error {
	m.updates = append(m.updates, accountUpdate{transactionID: id, accountID: accountID, account: account})
	for i := range m.txns {
		if m.txns[i].ID == id {
			m.txns[i].AccountID = &accountID
			m.txns[i].Account = &account
		}
	}
	return nil
}

func (m *mockStore) EnsureAccount(_ context.Context, name string) (int64, error) {
	if id, ok := m.accountIDs[name]; ok {
		return id, nil
	}
	m.nextID++
	m.accountIDs[name] = m.nextID
	return m.nextID, nil
}

func (m *mockStore) AppliedTransactionIDs(_ context.Context, _ string) (map[int64]struct{}, error) {
	return m.applied, nil
}

func (m *mockStore) InsertFeedback(_ context.Context, rec *models.FeedbackRecord) error {
	m.feedbackCalls++
	if m.errOnFeedbackCall != 0 && m.feedbackCalls == m.errOnFeedbackCall {
		return errStoreUnavailable
	}
	m.feedback = append(m.feedback, *rec)
	if rec.Decision == models.DecisionApply {
		m.applied[rec.TransactionID] = struct{}{}
	}
	return nil
}

func (m *mockStore) UpsertRule(_ context.Context, category, patternKey, expectedAccount string) error {
	m.upserts = append(m.upserts, upsertCall{category: category, patternKey: patternKey, expectedAccount: expectedAccount})
	m.rules[category+"|"+patternKey] = expectedAccount
	return nil
}

func (m *mockStore) WithinTx(_ context.Context, fn func(Store) error) error {
	if err := fn(m); err != nil {
		m.rolledBack = true
		return err
	}
	return nil
}
