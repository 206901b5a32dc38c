package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/splitpot/splitpot/internal/domain"
	"github.com/splitpot/splitpot/internal/usecase"
)

// ParticipantRepository implements usecase.ParticipantRepository.
type ParticipantRepository struct {
	pool *pgxpool.Pool
}

// NewParticipantRepository creates a new ParticipantRepository.
func NewParticipantRepository(pool *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{pool: pool}
}

// Create creates a new participant.
func (r *ParticipantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO participants (id, name, created_at) VALUES ($1, $2, $3)`,
		participant.ID, participant.Name, timeToPgTimestamptz(participant.CreatedAt),
	)

	return err
}

// CreateTx creates a new participant within a transaction.
func (r *ParticipantRepository) CreateTx(ctx context.Context, tx usecase.Transaction, participant *domain.Participant) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`INSERT INTO participants (id, name, created_at) VALUES ($1, $2, $3)`,
		participant.ID, participant.Name, timeToPgTimestamptz(participant.CreatedAt),
	)

	return err
}

// GetByID retrieves a participant by ID.
func (r *ParticipantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at FROM participants WHERE id = $1`,
		id,
	)

	participant, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}

		return nil, err
	}

	return participant, nil
}

// List lists all participants in registration order.
func (r *ParticipantRepository) List(ctx context.Context) ([]*domain.Participant, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at FROM participants ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]*domain.Participant, 0)
	for rows.Next() {
		participant, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		participants = append(participants, participant)
	}

	return participants, rows.Err()
}

// UpdateName changes a participant's display name.
func (r *ParticipantRepository) UpdateName(ctx context.Context, id, name string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE participants SET name = $2 WHERE id = $1`,
		id, name,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrParticipantNotFound
	}

	return nil
}

// Delete removes a participant. Foreign keys cascade: the participant's
// share rows disappear, and expenses they paid for are deleted with their
// own share rows.
func (r *ParticipantRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM participants WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrParticipantNotFound
	}

	return nil
}

// DeleteAllTx wipes every participant within a transaction. The cascade
// takes all expenses and share rows with them.
func (r *ParticipantRepository) DeleteAllTx(ctx context.Context, tx usecase.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM participants`)

	return err
}

func scanParticipant(row pgx.Row) (*domain.Participant, error) {
	var (
		participant domain.Participant
		createdAt   pgtype.Timestamptz
	)

	if err := row.Scan(&participant.ID, &participant.Name, &createdAt); err != nil {
		return nil, err
	}
	participant.CreatedAt = createdAt.Time

	return &participant, nil
}

// Type conversion helpers.
func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
