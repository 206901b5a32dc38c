package usecase

import (
	"context"
	"encoding/json"
	"math"

	"github.com/splitpot/splitpot/internal/domain"
	"github.com/splitpot/splitpot/internal/split"
)

// BalanceUseCase exposes the derived views: per-participant balances and the
// settlement plan. Both are recomputed from the full snapshot on demand; the
// cache is a short-lived memoization that every mutation invalidates.
type BalanceUseCase struct {
	participantRepo ParticipantRepository
	expenseRepo     ExpenseRepository
	cache           Cache
}

// NewBalanceUseCase creates a new BalanceUseCase.
func NewBalanceUseCase(participantRepo ParticipantRepository, expenseRepo ExpenseRepository, cache Cache) *BalanceUseCase {
	return &BalanceUseCase{
		participantRepo: participantRepo,
		expenseRepo:     expenseRepo,
		cache:           cache,
	}
}

// Snapshot bundles the two derived views computed from one state read.
type Snapshot struct {
	Balances    map[string]float64  `json:"balances"`
	Settlements []domain.Settlement `json:"settlements"`
}

// Balances returns each participant's net balance.
func (uc *BalanceUseCase) Balances(ctx context.Context) (map[string]float64, error) {
	snap, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return snap.Balances, nil
}

// Settlements returns the transfer plan that zeroes all balances.
func (uc *BalanceUseCase) Settlements(ctx context.Context) ([]domain.Settlement, error) {
	snap, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return snap.Settlements, nil
}

// CheckZeroSum verifies the invariant that all balances sum to zero. A
// violation would mean expense state and the computation disagree, which
// can only come from a bug or corrupted storage.
func (uc *BalanceUseCase) CheckZeroSum(ctx context.Context) (bool, float64, error) {
	snap, err := uc.snapshot(ctx)
	if err != nil {
		return false, 0, err
	}

	sum := 0.0
	for _, b := range snap.Balances {
		sum += b
	}

	return math.Abs(sum) <= split.Tolerance, sum, nil
}

func (uc *BalanceUseCase) snapshot(ctx context.Context) (*Snapshot, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, snapshotCacheKey); err == nil {
			var snap Snapshot
			if err := json.Unmarshal([]byte(raw), &snap); err == nil {
				return &snap, nil
			}
		}
	}

	participants, err := uc.participantRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Balances: split.Balances(participants, expenses),
	}
	snap.Settlements = split.Plan(snap.Balances)

	if uc.cache != nil {
		if raw, err := json.Marshal(snap); err == nil {
			// Best effort: a failed cache write only costs a recompute.
			_ = uc.cache.Set(ctx, snapshotCacheKey, string(raw), snapshotCacheTTL)
		}
	}

	return snap, nil
}

// snapshotInvalidator drops the memoized snapshot after a mutation.
type snapshotInvalidator struct {
	cache Cache
}

func (s *snapshotInvalidator) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}

	_ = s.cache.Delete(ctx, snapshotCacheKey)
}
