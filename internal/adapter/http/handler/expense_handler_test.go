package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/splitpot/splitpot/internal/adapter/http/dto"
	"github.com/splitpot/splitpot/internal/domain"
	"github.com/splitpot/splitpot/internal/usecase"
)

type expenseServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateExpenseInput) (*domain.Expense, error)
	getFn    func(ctx context.Context, id string) (*domain.Expense, error)
	listFn   func(ctx context.Context) ([]*domain.Expense, error)
	updateFn func(ctx context.Context, id string, input usecase.CreateExpenseInput) (*domain.Expense, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *expenseServiceStub) CreateExpense(ctx context.Context, input usecase.CreateExpenseInput) (*domain.Expense, error) {
	return s.createFn(ctx, input)
}

func (s *expenseServiceStub) GetExpense(ctx context.Context, id string) (*domain.Expense, error) {
	return s.getFn(ctx, id)
}

func (s *expenseServiceStub) ListExpenses(ctx context.Context) ([]*domain.Expense, error) {
	return s.listFn(ctx)
}

func (s *expenseServiceStub) UpdateExpense(ctx context.Context, id string, input usecase.CreateExpenseInput) (*domain.Expense, error) {
	return s.updateFn(ctx, id, input)
}

func (s *expenseServiceStub) DeleteExpense(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestExpenseHandler_Create_Success(t *testing.T) {
	expense := &domain.Expense{
		ID:             "e-1",
		Description:    "groceries",
		Amount:         54.20,
		PayerID:        "anna",
		ParticipantIDs: []string{"anna", "lena", "tom"},
	}

	var captured usecase.CreateExpenseInput
	handler := NewExpenseHandler(&expenseServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateExpenseInput) (*domain.Expense, error) {
			captured = input
			return expense, nil
		},
	})

	body, _ := json.Marshal(dto.ExpenseRequest{
		Description:    "groceries",
		Amount:         54.20,
		PayerID:        "anna",
		ParticipantIDs: []string{"anna", "lena", "tom"},
	})
	req := httptest.NewRequest(http.MethodPost, "/expenses", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Amount != 54.20 || captured.PayerID != "anna" || len(captured.ParticipantIDs) != 3 {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.ExpenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "e-1" {
		t.Fatalf("expected expense ID e-1, got %s", resp.ID)
	}
}

func TestExpenseHandler_Create_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"zero amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"non-finite amount", domain.ErrAmountNotFinite, http.StatusBadRequest},
		{"missing payer", domain.ErrMissingPayer, http.StatusBadRequest},
		{"empty share set", domain.ErrEmptyParticipantSet, http.StatusBadRequest},
		{"unknown participant", domain.ErrUnknownParticipant, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewExpenseHandler(&expenseServiceStub{
				createFn: func(ctx context.Context, input usecase.CreateExpenseInput) (*domain.Expense, error) {
					return nil, tt.err
				},
			})

			body, _ := json.Marshal(dto.ExpenseRequest{Amount: 1})
			req := httptest.NewRequest(http.MethodPost, "/expenses", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestExpenseHandler_Get_NotFound(t *testing.T) {
	handler := NewExpenseHandler(&expenseServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Expense, error) {
			return nil, domain.ErrExpenseNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/expenses/e-1", nil)
	req = setChiURLParam(req, "id", "e-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestExpenseHandler_List(t *testing.T) {
	handler := NewExpenseHandler(&expenseServiceStub{
		listFn: func(ctx context.Context) ([]*domain.Expense, error) {
			return []*domain.Expense{{ID: "e-1"}, {ID: "e-2"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.ExpenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(resp))
	}
}

func TestExpenseHandler_Update(t *testing.T) {
	handler := NewExpenseHandler(&expenseServiceStub{
		updateFn: func(ctx context.Context, id string, input usecase.CreateExpenseInput) (*domain.Expense, error) {
			if id != "e-1" {
				t.Fatalf("expected id e-1, got %s", id)
			}
			return &domain.Expense{ID: "e-1", Amount: input.Amount}, nil
		},
	})

	body, _ := json.Marshal(dto.ExpenseRequest{Amount: 42, PayerID: "anna", ParticipantIDs: []string{"anna"}})
	req := httptest.NewRequest(http.MethodPut, "/expenses/e-1", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "e-1")
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestExpenseHandler_Delete(t *testing.T) {
	handler := NewExpenseHandler(&expenseServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/expenses/e-1", nil)
	req = setChiURLParam(req, "id", "e-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
