package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/splitpot/splitpot/internal/adapter/http/handler"
	"github.com/splitpot/splitpot/internal/domain"
	"github.com/splitpot/splitpot/internal/usecase"
)

type stubBalanceService struct{}

func (stubBalanceService) Balances(ctx context.Context) (map[string]float64, error) {
	return map[string]float64{}, nil
}

func (stubBalanceService) Settlements(ctx context.Context) ([]domain.Settlement, error) {
	return nil, nil
}

func (stubBalanceService) CheckZeroSum(ctx context.Context) (bool, float64, error) {
	return true, 0, nil
}

type stubParticipantService struct{}

func (stubParticipantService) CreateParticipant(ctx context.Context, input usecase.CreateParticipantInput) (*domain.Participant, error) {
	return &domain.Participant{ID: "p-1", Name: input.Name}, nil
}

func (stubParticipantService) GetParticipant(ctx context.Context, id string) (*domain.Participant, error) {
	return &domain.Participant{ID: id}, nil
}

func (stubParticipantService) ListParticipants(ctx context.Context) ([]*domain.Participant, error) {
	return nil, nil
}

func (stubParticipantService) RenameParticipant(ctx context.Context, id, name string) (*domain.Participant, error) {
	return &domain.Participant{ID: id, Name: name}, nil
}

func (stubParticipantService) DeleteParticipant(ctx context.Context, id string) error {
	return nil
}

type stubExpenseService struct{}

func (stubExpenseService) CreateExpense(ctx context.Context, input usecase.CreateExpenseInput) (*domain.Expense, error) {
	return &domain.Expense{ID: "e-1"}, nil
}

func (stubExpenseService) GetExpense(ctx context.Context, id string) (*domain.Expense, error) {
	return &domain.Expense{ID: id}, nil
}

func (stubExpenseService) ListExpenses(ctx context.Context) ([]*domain.Expense, error) {
	return nil, nil
}

func (stubExpenseService) UpdateExpense(ctx context.Context, id string, input usecase.CreateExpenseInput) (*domain.Expense, error) {
	return &domain.Expense{ID: id}, nil
}

func (stubExpenseService) DeleteExpense(ctx context.Context, id string) error {
	return nil
}

type stubDatasetService struct{}

func (stubDatasetService) Export(ctx context.Context) (*domain.Dataset, error) {
	return &domain.Dataset{SchemaVersion: domain.SchemaVersion, CurrencyCode: "USD"}, nil
}

func (stubDatasetService) Import(ctx context.Context, ds *domain.Dataset) error {
	return nil
}

func newTestRouter() http.Handler {
	return NewRouter(RouterConfig{
		ParticipantHandler: handler.NewParticipantHandler(stubParticipantService{}),
		ExpenseHandler:     handler.NewExpenseHandler(stubExpenseService{}),
		BalanceHandler:     handler.NewBalanceHandler(stubBalanceService{}),
		DatasetHandler:     handler.NewDatasetHandler(stubDatasetService{}),
		HealthHandler:      handler.NewHealthHandler(nil, nil),
		Logger:             zerolog.Nop(),
	})
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := newTestRouter()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/participants"},
		{http.MethodGet, "/api/v1/participants/p-1"},
		{http.MethodGet, "/api/v1/expenses"},
		{http.MethodGet, "/api/v1/expenses/e-1"},
		{http.MethodGet, "/api/v1/balances"},
		{http.MethodGet, "/api/v1/balances/check"},
		{http.MethodGet, "/api/v1/settlements"},
		{http.MethodGet, "/api/v1/dataset/export"},
	}

	for _, rt := range routes {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(rt.method, rt.path, nil)
		router.ServeHTTP(rec, req)

		if rec.Code == http.StatusNotFound || rec.Code == http.StatusMethodNotAllowed {
			t.Errorf("%s %s not routed: %d", rt.method, rt.path, rec.Code)
		}
	}
}
