package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/splitpot/splitpot/internal/domain"
	"github.com/splitpot/splitpot/internal/usecase"
)

// ExpenseRepository implements usecase.ExpenseRepository. An expense spans
// two tables: the expenses row plus one expense_shares row per member of
// the share set, positioned to keep the set's order stable.
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

// Create creates a new expense and its share rows in one transaction.
func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := insertExpense(ctx, tx, expense); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// CreateTx creates a new expense within an existing transaction.
func (r *ExpenseRepository) CreateTx(ctx context.Context, tx usecase.Transaction, expense *domain.Expense) error {
	return insertExpense(ctx, tx.(*Tx).PgxTx(), expense)
}

// GetByID retrieves an expense by ID, share set included.
func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, description, amount, payer_id, spent_on, created_at
		 FROM expenses WHERE id = $1`,
		id,
	)

	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}

		return nil, err
	}

	shares, err := r.loadShares(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	expense.ParticipantIDs = shares[id]

	return expense, nil
}

// List lists all expenses in insertion order, share sets included.
func (r *ExpenseRepository) List(ctx context.Context) ([]*domain.Expense, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, description, amount, payer_id, spent_on, created_at
		 FROM expenses ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]*domain.Expense, 0)
	ids := make([]string, 0)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
		ids = append(ids, expense.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	shares, err := r.loadShares(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, expense := range expenses {
		expense.ParticipantIDs = shares[expense.ID]
	}

	return expenses, nil
}

// Update replaces an expense's fields and rewrites its share rows.
func (r *ExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE expenses
		 SET description = $2, amount = $3, payer_id = $4, spent_on = $5
		 WHERE id = $1`,
		expense.ID, expense.Description, expense.Amount, expense.PayerID,
		spentOnToPg(expense),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM expense_shares WHERE expense_id = $1`,
		expense.ID,
	); err != nil {
		return err
	}

	if err := insertShares(ctx, tx, expense); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes an expense; its share rows cascade away.
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM expenses WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}

	return nil
}

func insertExpense(ctx context.Context, tx pgx.Tx, expense *domain.Expense) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO expenses (id, description, amount, payer_id, spent_on, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		expense.ID, expense.Description, expense.Amount, expense.PayerID,
		spentOnToPg(expense), timeToPgTimestamptz(expense.CreatedAt),
	)
	if err != nil {
		return err
	}

	return insertShares(ctx, tx, expense)
}

func insertShares(ctx context.Context, tx pgx.Tx, expense *domain.Expense) error {
	for i, participantID := range expense.ParticipantIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO expense_shares (expense_id, participant_id, position)
			 VALUES ($1, $2, $3)`,
			expense.ID, participantID, i,
		); err != nil {
			return err
		}
	}

	return nil
}

func (r *ExpenseRepository) loadShares(ctx context.Context, expenseIDs []string) (map[string][]string, error) {
	shares := make(map[string][]string, len(expenseIDs))
	if len(expenseIDs) == 0 {
		return shares, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT expense_id, participant_id
		 FROM expense_shares WHERE expense_id = ANY($1)
		 ORDER BY expense_id, position`,
		expenseIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var expenseID, participantID string
		if err := rows.Scan(&expenseID, &participantID); err != nil {
			return nil, err
		}
		shares[expenseID] = append(shares[expenseID], participantID)
	}

	return shares, rows.Err()
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var (
		expense   domain.Expense
		spentOn   pgtype.Timestamptz
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&expense.ID, &expense.Description, &expense.Amount,
		&expense.PayerID, &spentOn, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if spentOn.Valid {
		expense.SpentOn = spentOn.Time
	}
	expense.CreatedAt = createdAt.Time

	return &expense, nil
}

func spentOnToPg(expense *domain.Expense) pgtype.Timestamptz {
	if expense.SpentOn.IsZero() {
		return pgtype.Timestamptz{}
	}

	return timeToPgTimestamptz(expense.SpentOn)
}
