package usecase

import (
	"context"
	"time"

	"github.com/splitpot/splitpot/internal/domain"
)

// DatasetUseCase handles whole-dataset export and import.
type DatasetUseCase struct {
	txManager       TransactionManager
	participantRepo ParticipantRepository
	expenseRepo     ExpenseRepository
	metaRepo        MetaRepository
	retrier         Retrier
	snapshots       *snapshotInvalidator
}

// NewDatasetUseCase creates a new DatasetUseCase.
func NewDatasetUseCase(
	txManager TransactionManager,
	participantRepo ParticipantRepository,
	expenseRepo ExpenseRepository,
	metaRepo MetaRepository,
	retrier Retrier,
	cache Cache,
) *DatasetUseCase {
	return &DatasetUseCase{
		txManager:       txManager,
		participantRepo: participantRepo,
		expenseRepo:     expenseRepo,
		metaRepo:        metaRepo,
		retrier:         retrier,
		snapshots:       &snapshotInvalidator{cache: cache},
	}
}

// Export builds the dataset envelope from storage. Balances and settlements
// are not part of it: they are derived views, recomputed by whoever imports.
func (uc *DatasetUseCase) Export(ctx context.Context) (*domain.Dataset, error) {
	currency, err := uc.metaRepo.GetCurrency(ctx)
	if err != nil {
		return nil, err
	}

	participants, err := uc.participantRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Dataset{
		SchemaVersion: domain.SchemaVersion,
		CurrencyCode:  currency,
		Participants:  participants,
		Expenses:      expenses,
	}, nil
}

// Import validates the envelope and replaces all state with it in a single
// transaction. A rejected envelope leaves existing data untouched.
func (uc *DatasetUseCase) Import(ctx context.Context, ds *domain.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	// The wipe-and-reload runs in one transaction; transient conflicts with
	// concurrent writers are retried whole.
	err := uc.retrier.Retry(ctx, func() error {
		return uc.importTx(ctx, ds)
	})
	if err != nil {
		return err
	}

	uc.snapshots.invalidate(ctx)

	return nil
}

func (uc *DatasetUseCase) importTx(ctx context.Context, ds *domain.Dataset) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := uc.participantRepo.DeleteAllTx(ctx, tx); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, p := range ds.Participants {
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		if err := uc.participantRepo.CreateTx(ctx, tx, p); err != nil {
			return err
		}
	}

	for _, e := range ds.Expenses {
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now
		}
		if err := uc.expenseRepo.CreateTx(ctx, tx, e); err != nil {
			return err
		}
	}

	if err := uc.metaRepo.SetCurrencyTx(ctx, tx, ds.CurrencyCode); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
