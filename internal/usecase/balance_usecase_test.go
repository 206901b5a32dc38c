package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/splitpot/splitpot/internal/domain"
	"github.com/splitpot/splitpot/internal/usecase"
	"github.com/splitpot/splitpot/internal/usecase/mocks"
)

func seedTrip(t *testing.T) (*mocks.MockParticipantRepository, *mocks.MockExpenseRepository) {
	t.Helper()

	participantRepo := mocks.NewMockParticipantRepository()
	seedParticipants(t, participantRepo, "anna", "lena", "tom")

	expenseRepo := mocks.NewMockExpenseRepository()
	now := time.Now().UTC()
	expenses := []*domain.Expense{
		{ID: "e1", Description: "groceries", Amount: 54.20, PayerID: "anna", ParticipantIDs: []string{"anna", "lena", "tom"}, CreatedAt: now},
		{ID: "e2", Description: "wine", Amount: 9.60, PayerID: "lena", ParticipantIDs: []string{"lena", "tom"}, CreatedAt: now},
		{ID: "e3", Description: "fuel", Amount: 18.00, PayerID: "tom", ParticipantIDs: []string{"anna", "tom"}, CreatedAt: now},
	}
	for _, e := range expenses {
		if err := expenseRepo.Create(context.Background(), e); err != nil {
			t.Fatalf("seed expense %s: %v", e.ID, err)
		}
	}

	return participantRepo, expenseRepo
}

func TestBalanceUseCase_Balances(t *testing.T) {
	participantRepo, expenseRepo := seedTrip(t)
	uc := usecase.NewBalanceUseCase(participantRepo, expenseRepo, mocks.NewMockCache())

	balances, err := uc.Balances(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]float64{
		"anna": 54.20 - 54.20/3 - 18.00/2,
		"lena": 9.60 - 54.20/3 - 9.60/2,
		"tom":  18.00 - 54.20/3 - 9.60/2 - 18.00/2,
	}
	for id, b := range want {
		if math.Abs(balances[id]-b) > 1e-9 {
			t.Errorf("balance[%s] = %v, want %v", id, balances[id], b)
		}
	}
}

func TestBalanceUseCase_Settlements(t *testing.T) {
	participantRepo, expenseRepo := seedTrip(t)
	uc := usecase.NewBalanceUseCase(participantRepo, expenseRepo, mocks.NewMockCache())

	settlements, err := uc.Settlements(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(settlements) == 0 {
		t.Fatal("expected at least one settlement")
	}

	// Applying the plan to the balances must zero them all out.
	balances, err := uc.Balances(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range settlements {
		balances[s.FromID] += s.Amount
		balances[s.ToID] -= s.Amount
	}
	for id, b := range balances {
		if math.Abs(b) > 0.005 {
			t.Errorf("balance[%s] = %v after settling, want ~0", id, b)
		}
	}
}

func TestBalanceUseCase_CheckZeroSum(t *testing.T) {
	participantRepo, expenseRepo := seedTrip(t)
	uc := usecase.NewBalanceUseCase(participantRepo, expenseRepo, mocks.NewMockCache())

	ok, sum, err := uc.CheckZeroSum(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Errorf("expected zero-sum to hold, sum = %v", sum)
	}
}

func TestBalanceUseCase_SnapshotCaching(t *testing.T) {
	participantRepo, expenseRepo := seedTrip(t)
	cache := mocks.NewMockCache()
	uc := usecase.NewBalanceUseCase(participantRepo, expenseRepo, cache)

	listCalls := 0
	participantRepo.ListFunc = func(ctx context.Context) ([]*domain.Participant, error) {
		listCalls++
		return []*domain.Participant{{ID: "anna"}, {ID: "lena"}, {ID: "tom"}}, nil
	}

	if _, err := uc.Balances(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Settlements(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if listCalls != 1 {
		t.Errorf("expected one storage read with a warm cache, got %d", listCalls)
	}
}

func TestBalanceUseCase_CorruptCacheEntryIsIgnored(t *testing.T) {
	participantRepo, expenseRepo := seedTrip(t)
	cache := mocks.NewMockCache()
	if err := cache.Set(context.Background(), "snapshot", "{not json", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := usecase.NewBalanceUseCase(participantRepo, expenseRepo, cache)

	balances, err := uc.Balances(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(balances) != 3 {
		t.Errorf("expected recomputed balances for 3 participants, got %d", len(balances))
	}

	// The recompute overwrites the bad entry with valid JSON.
	raw, err := cache.Get(context.Background(), "snapshot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var snap usecase.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		t.Errorf("cached snapshot is not valid JSON: %v", err)
	}
}

func TestBalanceUseCase_CacheFailureFallsThrough(t *testing.T) {
	participantRepo, expenseRepo := seedTrip(t)
	cache := mocks.NewMockCache()
	cache.GetFunc = func(ctx context.Context, key string) (string, error) {
		return "", errors.New("redis unreachable")
	}
	cache.SetFunc = func(ctx context.Context, key, value string, ttl time.Duration) error {
		return errors.New("redis unreachable")
	}

	uc := usecase.NewBalanceUseCase(participantRepo, expenseRepo, cache)

	if _, err := uc.Balances(context.Background()); err != nil {
		t.Fatalf("cache failure must not surface: %v", err)
	}
}

func TestBalanceUseCase_RepositoryErrorPropagates(t *testing.T) {
	participantRepo, expenseRepo := seedTrip(t)
	boom := errors.New("db down")
	participantRepo.ListFunc = func(ctx context.Context) ([]*domain.Participant, error) {
		return nil, boom
	}

	uc := usecase.NewBalanceUseCase(participantRepo, expenseRepo, mocks.NewMockCache())

	if _, err := uc.Balances(context.Background()); !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}
}
