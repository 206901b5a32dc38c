// Package mocks provides hand-written mocks for the usecase interfaces.
// Defaults act as simple in-memory fakes; set the corresponding Func field
// to override a single method in a test.
package mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/splitpot/splitpot/internal/domain"
	"github.com/splitpot/splitpot/internal/usecase"
)

// MockParticipantRepository is a mock implementation of ParticipantRepository.
type MockParticipantRepository struct {
	mu           sync.RWMutex
	participants map[string]*domain.Participant
	order        []string

	CreateFunc      func(ctx context.Context, participant *domain.Participant) error
	CreateTxFunc    func(ctx context.Context, tx usecase.Transaction, participant *domain.Participant) error
	GetByIDFunc     func(ctx context.Context, id string) (*domain.Participant, error)
	ListFunc        func(ctx context.Context) ([]*domain.Participant, error)
	UpdateNameFunc  func(ctx context.Context, id, name string) error
	DeleteFunc      func(ctx context.Context, id string) error
	DeleteAllTxFunc func(ctx context.Context, tx usecase.Transaction) error
}

func NewMockParticipantRepository() *MockParticipantRepository {
	return &MockParticipantRepository{
		participants: make(map[string]*domain.Participant),
	}
}

func (m *MockParticipantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, participant)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.participants[participant.ID] = participant
	m.order = append(m.order, participant.ID)
	return nil
}

func (m *MockParticipantRepository) CreateTx(ctx context.Context, tx usecase.Transaction, participant *domain.Participant) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, participant)
	}
	return m.Create(ctx, participant)
}

func (m *MockParticipantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.participants[id]; ok {
		return p, nil
	}
	return nil, domain.ErrParticipantNotFound
}

func (m *MockParticipantRepository) List(ctx context.Context) ([]*domain.Participant, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Participant, 0, len(m.order))
	for _, id := range m.order {
		if p, ok := m.participants[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockParticipantRepository) UpdateName(ctx context.Context, id, name string) error {
	if m.UpdateNameFunc != nil {
		return m.UpdateNameFunc(ctx, id, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.participants[id]
	if !ok {
		return domain.ErrParticipantNotFound
	}
	p.Name = name
	return nil
}

func (m *MockParticipantRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.participants[id]; !ok {
		return domain.ErrParticipantNotFound
	}
	delete(m.participants, id)
	return nil
}

func (m *MockParticipantRepository) DeleteAllTx(ctx context.Context, tx usecase.Transaction) error {
	if m.DeleteAllTxFunc != nil {
		return m.DeleteAllTxFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.participants = make(map[string]*domain.Participant)
	m.order = nil
	return nil
}

// MockExpenseRepository is a mock implementation of ExpenseRepository.
type MockExpenseRepository struct {
	mu       sync.RWMutex
	expenses map[string]*domain.Expense
	order    []string

	CreateFunc   func(ctx context.Context, expense *domain.Expense) error
	CreateTxFunc func(ctx context.Context, tx usecase.Transaction, expense *domain.Expense) error
	GetByIDFunc  func(ctx context.Context, id string) (*domain.Expense, error)
	ListFunc     func(ctx context.Context) ([]*domain.Expense, error)
	UpdateFunc   func(ctx context.Context, expense *domain.Expense) error
	DeleteFunc   func(ctx context.Context, id string) error
}

func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{
		expenses: make(map[string]*domain.Expense),
	}
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, expense)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expenses[expense.ID] = expense
	m.order = append(m.order, expense.ID)
	return nil
}

func (m *MockExpenseRepository) CreateTx(ctx context.Context, tx usecase.Transaction, expense *domain.Expense) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, expense)
	}
	return m.Create(ctx, expense)
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.expenses[id]; ok {
		return e, nil
	}
	return nil, domain.ErrExpenseNotFound
}

func (m *MockExpenseRepository) List(ctx context.Context) ([]*domain.Expense, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Expense, 0, len(m.order))
	for _, id := range m.order {
		if e, ok := m.expenses[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, expense)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.expenses[expense.ID]; !ok {
		return domain.ErrExpenseNotFound
	}
	m.expenses[expense.ID] = expense
	return nil
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.expenses[id]; !ok {
		return domain.ErrExpenseNotFound
	}
	delete(m.expenses, id)
	return nil
}

// MockMetaRepository is a mock implementation of MetaRepository.
type MockMetaRepository struct {
	mu       sync.RWMutex
	currency string

	GetCurrencyFunc   func(ctx context.Context) (string, error)
	SetCurrencyFunc   func(ctx context.Context, code string) error
	SetCurrencyTxFunc func(ctx context.Context, tx usecase.Transaction, code string) error
}

func NewMockMetaRepository() *MockMetaRepository {
	return &MockMetaRepository{currency: "USD"}
}

func (m *MockMetaRepository) GetCurrency(ctx context.Context) (string, error) {
	if m.GetCurrencyFunc != nil {
		return m.GetCurrencyFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currency, nil
}

func (m *MockMetaRepository) SetCurrency(ctx context.Context, code string) error {
	if m.SetCurrencyFunc != nil {
		return m.SetCurrencyFunc(ctx, code)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currency = code
	return nil
}

func (m *MockMetaRepository) SetCurrencyTx(ctx context.Context, tx usecase.Transaction, code string) error {
	if m.SetCurrencyTxFunc != nil {
		return m.SetCurrencyTxFunc(ctx, tx, code)
	}
	return m.SetCurrency(ctx, code)
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	Tx        *MockTransaction
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{Tx: &MockTransaction{}}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return m.Tx, nil
}

// MockRetrier is a mock implementation of Retrier. The default runs the
// operation exactly once with no backoff.
type MockRetrier struct {
	Calls int

	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	m.Calls++
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// ErrCacheMiss is returned by MockCache.Get for absent keys.
var ErrCacheMiss = errors.New("cache miss")

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu      sync.RWMutex
	entries map[string]string

	Deletes int

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{entries: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.entries[key]; ok {
		return v, nil
	}
	return "", ErrCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	m.Deletes++
	return nil
}
