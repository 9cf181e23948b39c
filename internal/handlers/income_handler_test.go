package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cofre/internal/dates"
	apperrors "cofre/internal/errors"
	"cofre/internal/ledger"
	"cofre/internal/models"
	"cofre/internal/pagination"
	"cofre/internal/report"
	"cofre/internal/services"
)

type mockIncomeService struct {
	createFn    func(userID string, draft services.IncomeDraft) (*models.Income, error)
	listFn      func(userID string, filter ledger.Filter) (*pagination.PageResponse[models.Income], error)
	getFn       func(userID, id string) (*models.Income, error)
	updateFn    func(userID, id string, upd services.IncomeUpdate) (*models.Income, error)
	deleteFn    func(userID, id string) (int64, error)
	summarizeFn func(userID string, period dates.Period) (*report.IncomeSummary, error)
}

var _ services.IncomeServicer = (*mockIncomeService)(nil)

func (m *mockIncomeService) CreateIncome(_ context.Context, userID string, draft services.IncomeDraft) (*models.Income, error) {
	if m.createFn != nil {
		return m.createFn(userID, draft)
	}
	return &models.Income{}, nil
}

func (m *mockIncomeService) ListIncomes(_ context.Context, userID string, filter ledger.Filter, _ pagination.PageRequest) (*pagination.PageResponse[models.Income], error) {
	if m.listFn != nil {
		return m.listFn(userID, filter)
	}
	resp := pagination.NewPageResponse[models.Income](nil, 1, 20, 0)
	return &resp, nil
}

func (m *mockIncomeService) GetIncome(_ context.Context, userID, id string) (*models.Income, error) {
	if m.getFn != nil {
		return m.getFn(userID, id)
	}
	return &models.Income{}, nil
}

func (m *mockIncomeService) UpdateIncome(_ context.Context, userID, id string, upd services.IncomeUpdate) (*models.Income, error) {
	if m.updateFn != nil {
		return m.updateFn(userID, id, upd)
	}
	return &models.Income{}, nil
}

func (m *mockIncomeService) DeleteIncome(_ context.Context, userID, id string) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(userID, id)
	}
	return 1, nil
}

func (m *mockIncomeService) SummarizeIncomes(_ context.Context, userID string, period dates.Period) (*report.IncomeSummary, error) {
	if m.summarizeFn != nil {
		return m.summarizeFn(userID, period)
	}
	return &report.IncomeSummary{Period: period}, nil
}

func setupIncomeRouter(handler *IncomeHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/incomes", injectUserID(testUserID))
	g.POST("", handler.CreateIncome)
	g.GET("", handler.GetIncomes)
	g.GET("/summary", handler.GetIncomeSummary)
	g.GET("/:id", handler.GetIncome)
	g.PUT("/:id", handler.UpdateIncome)
	g.DELETE("/:id", handler.DeleteIncome)
	return r
}

func TestIncomeHandler_CreateIncome(t *testing.T) {
	t.Run("creates a recurring income", func(t *testing.T) {
		var got services.IncomeDraft
		svc := &mockIncomeService{
			createFn: func(_ string, draft services.IncomeDraft) (*models.Income, error) {
				got = draft
				return &models.Income{}, nil
			},
		}
		r := setupIncomeRouter(NewIncomeHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/incomes",
			`{"date":"2024-01-05","description":"Salário","amount":"5.000,00","income_type":"Fixo","recurring":true}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Amount != 500000 || !got.Recurring || got.IncomeType != "Fixo" {
			t.Errorf("unexpected draft %+v", got)
		}
	})

	t.Run("rejects a zero amount", func(t *testing.T) {
		r := setupIncomeRouter(NewIncomeHandler(&mockIncomeService{}, &mockAuditService{}))
		rec := doRequest(r, "POST", "/incomes", `{"date":"2024-01-05","description":"x","amount":0}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestIncomeHandler_Summary(t *testing.T) {
	t.Run("defaults to the current month", func(t *testing.T) {
		var got dates.Period
		svc := &mockIncomeService{
			summarizeFn: func(_ string, period dates.Period) (*report.IncomeSummary, error) {
				got = period
				return &report.IncomeSummary{Period: period}, nil
			},
		}
		r := setupIncomeRouter(NewIncomeHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/incomes/summary", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got != dates.PeriodOf(time.Now()) {
			t.Errorf("expected current month, got %v", got)
		}
	})

	t.Run("rejects a malformed period", func(t *testing.T) {
		r := setupIncomeRouter(NewIncomeHandler(&mockIncomeService{}, &mockAuditService{}))
		rec := doRequest(r, "GET", "/incomes/summary?period=2024-13", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_PERIOD")
	})
}

func TestIncomeHandler_CRUD(t *testing.T) {
	audit := &mockAuditService{}
	svc := &mockIncomeService{
		getFn: func(_, _ string) (*models.Income, error) { return nil, apperrors.ErrIncomeNotFound },
		updateFn: func(_, _ string, upd services.IncomeUpdate) (*models.Income, error) {
			if upd.Recurring == nil || *upd.Recurring {
				t.Errorf("expected recurring=false, got %v", upd.Recurring)
			}
			return &models.Income{}, nil
		},
		deleteFn: func(_, _ string) (int64, error) { return 4, nil },
	}
	r := setupIncomeRouter(NewIncomeHandler(svc, audit))

	rec := doRequest(r, "GET", "/incomes/"+testExpenseID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "INCOME_NOT_FOUND")

	rec = doRequest(r, "PUT", "/incomes/"+testExpenseID, `{"recurring":false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doRequest(r, "DELETE", "/incomes/"+testExpenseID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(audit.entries) != 1 || audit.entries[0].action != services.AuditDeleteIncome {
		t.Errorf("unexpected audit entries %+v", audit.entries)
	}
}
