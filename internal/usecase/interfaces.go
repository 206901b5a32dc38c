package usecase

import (
	"context"
	"time"

	"github.com/splitpot/splitpot/internal/domain"
)

// ParticipantRepository defines data access for participants.
type ParticipantRepository interface {
	Create(ctx context.Context, participant *domain.Participant) error
	CreateTx(ctx context.Context, tx Transaction, participant *domain.Participant) error
	GetByID(ctx context.Context, id string) (*domain.Participant, error)
	List(ctx context.Context) ([]*domain.Participant, error)
	UpdateName(ctx context.Context, id, name string) error
	// Delete removes the participant and cascades: the participant leaves
	// every expense's share set, and expenses they paid for are deleted.
	Delete(ctx context.Context, id string) error
	DeleteAllTx(ctx context.Context, tx Transaction) error
}

// ExpenseRepository defines data access for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	CreateTx(ctx context.Context, tx Transaction, expense *domain.Expense) error
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	List(ctx context.Context) ([]*domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) error
	Delete(ctx context.Context, id string) error
}

// MetaRepository defines data access for dataset-wide settings.
type MetaRepository interface {
	GetCurrency(ctx context.Context) (string, error)
	SetCurrency(ctx context.Context, code string) error
	SetCurrencyTx(ctx context.Context, tx Transaction, code string) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries operations that failed transiently.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations for derived views.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
