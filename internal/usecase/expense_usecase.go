package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/splitpot/splitpot/internal/domain"
)

// ExpenseUseCase handles expense business logic. The balance computation is
// deliberately permissive about malformed expenses; this layer is where the
// strict validation lives, so stored data is always well-formed.
type ExpenseUseCase struct {
	expenseRepo     ExpenseRepository
	participantRepo ParticipantRepository
	idGen           IDGenerator
	snapshots       *snapshotInvalidator
}

// NewExpenseUseCase creates a new ExpenseUseCase.
func NewExpenseUseCase(expenseRepo ExpenseRepository, participantRepo ParticipantRepository, idGen IDGenerator, cache Cache) *ExpenseUseCase {
	return &ExpenseUseCase{
		expenseRepo:     expenseRepo,
		participantRepo: participantRepo,
		idGen:           idGen,
		snapshots:       &snapshotInvalidator{cache: cache},
	}
}

// CreateExpenseInput represents input for logging an expense.
type CreateExpenseInput struct {
	Description    string
	Amount         float64
	PayerID        string
	ParticipantIDs []string
	SpentOn        time.Time
}

// CreateExpense validates and persists a new expense.
func (uc *ExpenseUseCase) CreateExpense(ctx context.Context, input CreateExpenseInput) (*domain.Expense, error) {
	expense := &domain.Expense{
		ID:             uc.idGen.Generate(),
		Description:    input.Description,
		Amount:         input.Amount,
		PayerID:        input.PayerID,
		ParticipantIDs: input.ParticipantIDs,
		SpentOn:        input.SpentOn,
		CreatedAt:      time.Now().UTC(),
	}

	if err := uc.validate(ctx, expense); err != nil {
		return nil, err
	}

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	uc.snapshots.invalidate(ctx)

	return expense, nil
}

// GetExpense retrieves an expense by ID.
func (uc *ExpenseUseCase) GetExpense(ctx context.Context, id string) (*domain.Expense, error) {
	return uc.expenseRepo.GetByID(ctx, id)
}

// ListExpenses lists all expenses in insertion order.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context) ([]*domain.Expense, error) {
	return uc.expenseRepo.List(ctx)
}

// UpdateExpense replaces an existing expense's fields.
func (uc *ExpenseUseCase) UpdateExpense(ctx context.Context, id string, input CreateExpenseInput) (*domain.Expense, error) {
	existing, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		ID:             existing.ID,
		Description:    input.Description,
		Amount:         input.Amount,
		PayerID:        input.PayerID,
		ParticipantIDs: input.ParticipantIDs,
		SpentOn:        input.SpentOn,
		CreatedAt:      existing.CreatedAt,
	}

	if err := uc.validate(ctx, expense); err != nil {
		return nil, err
	}

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	uc.snapshots.invalidate(ctx)

	return expense, nil
}

// DeleteExpense removes an expense.
func (uc *ExpenseUseCase) DeleteExpense(ctx context.Context, id string) error {
	if err := uc.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.snapshots.invalidate(ctx)

	return nil
}

// validate runs the structural checks plus referential ones: the payer and
// every share member must be registered participants.
func (uc *ExpenseUseCase) validate(ctx context.Context, expense *domain.Expense) error {
	if err := expense.Validate(); err != nil {
		return err
	}

	participants, err := uc.participantRepo.List(ctx)
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(participants))
	for _, p := range participants {
		known[p.ID] = true
	}

	if !known[expense.PayerID] {
		return fmt.Errorf("%w: payer %s", domain.ErrUnknownParticipant, expense.PayerID)
	}
	for _, id := range expense.ParticipantIDs {
		if !known[id] {
			return fmt.Errorf("%w: %s", domain.ErrUnknownParticipant, id)
		}
	}

	return nil
}
