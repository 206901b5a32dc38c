package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/splitpot/splitpot/internal/usecase"
)

// MetaRepository implements usecase.MetaRepository on the single-row
// dataset_meta table.
type MetaRepository struct {
	pool *pgxpool.Pool
}

// NewMetaRepository creates a new MetaRepository.
func NewMetaRepository(pool *pgxpool.Pool) *MetaRepository {
	return &MetaRepository{pool: pool}
}

// GetCurrency returns the dataset's display currency code.
func (r *MetaRepository) GetCurrency(ctx context.Context) (string, error) {
	var code string
	err := r.pool.QueryRow(ctx,
		`SELECT currency_code FROM dataset_meta WHERE id = 1`,
	).Scan(&code)
	if err != nil {
		return "", err
	}

	return code, nil
}

// SetCurrency updates the dataset's display currency code.
func (r *MetaRepository) SetCurrency(ctx context.Context, code string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE dataset_meta SET currency_code = $1 WHERE id = 1`,
		code,
	)

	return err
}

// SetCurrencyTx updates the currency code within a transaction.
func (r *MetaRepository) SetCurrencyTx(ctx context.Context, tx usecase.Transaction, code string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`UPDATE dataset_meta SET currency_code = $1 WHERE id = 1`,
		code,
	)

	return err
}
