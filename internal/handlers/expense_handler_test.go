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
	"cofre/internal/services"
)

const testExpenseID = "0190f3a2-7c1e-7000-8000-0000000000e1"

// --- mock expense service ---

type mockExpenseService struct {
	createFn       func(userID string, draft services.ExpenseDraft, count int) ([]models.Expense, error)
	listFn         func(userID string, filter ledger.Filter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	installmentsFn func(userID string) ([]models.Expense, error)
	futureFn       func(userID string, period *dates.Period) ([]models.Expense, error)
	getFn          func(userID, id string) (*models.Expense, error)
	updateFn       func(userID, id string, upd services.ExpenseUpdate) (*models.Expense, error)
	deleteFn       func(userID, id string) (int64, error)
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

func (m *mockExpenseService) CreateInstallmentGroup(_ context.Context, userID string, draft services.ExpenseDraft, count int) ([]models.Expense, error) {
	if m.createFn != nil {
		return m.createFn(userID, draft, count)
	}
	return []models.Expense{{}}, nil
}

func (m *mockExpenseService) ListExpenses(_ context.Context, userID string, filter ledger.Filter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	if m.listFn != nil {
		return m.listFn(userID, filter, page)
	}
	resp := pagination.NewPageResponse[models.Expense](nil, 1, 20, 0)
	return &resp, nil
}

func (m *mockExpenseService) ListInstallments(_ context.Context, userID string) ([]models.Expense, error) {
	if m.installmentsFn != nil {
		return m.installmentsFn(userID)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) ListFutureExpenses(_ context.Context, userID string, period *dates.Period) ([]models.Expense, error) {
	if m.futureFn != nil {
		return m.futureFn(userID, period)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) GetExpense(_ context.Context, userID, id string) (*models.Expense, error) {
	if m.getFn != nil {
		return m.getFn(userID, id)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) UpdateExpense(_ context.Context, userID, id string, upd services.ExpenseUpdate) (*models.Expense, error) {
	if m.updateFn != nil {
		return m.updateFn(userID, id, upd)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) DeleteExpense(_ context.Context, userID, id string) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(userID, id)
	}
	return 1, nil
}

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/expenses", injectUserID(testUserID))
	g.POST("", handler.CreateExpense)
	g.GET("", handler.GetExpenses)
	g.GET("/installments", handler.GetInstallments)
	g.GET("/future", handler.GetFutureExpenses)
	g.GET("/:id", handler.GetExpense)
	g.PUT("/:id", handler.UpdateExpense)
	g.DELETE("/:id", handler.DeleteExpense)
	return r
}

const validExpense = `{"date":"2024-01-31","description":"Notebook","amount":"R$ 1.000,00",` +
	`"category":"Eletrônicos","payment_method":"Cartão de Crédito","emotion":"Planejado","installments":3}`

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("parses a localized amount and forwards the installment count", func(t *testing.T) {
		var gotDraft services.ExpenseDraft
		var gotCount int
		svc := &mockExpenseService{
			createFn: func(userID string, draft services.ExpenseDraft, count int) ([]models.Expense, error) {
				gotDraft, gotCount = draft, count
				rows := make([]models.Expense, count)
				for i := range rows {
					rows[i].UserID = userID
					rows[i].InstallmentNumber = i + 1
				}
				return rows, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/expenses", validExpense)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotCount != 3 {
			t.Errorf("expected 3 installments, got %d", gotCount)
		}
		if gotDraft.Amount != 100000 {
			t.Errorf("expected 100000 cents, got %d", gotDraft.Amount)
		}
		if !gotDraft.Date.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected date %v", gotDraft.Date)
		}
		if rows := parseJSON(t, rec)["expenses"].([]interface{}); len(rows) != 3 {
			t.Errorf("expected 3 rows in response, got %d", len(rows))
		}
	})

	t.Run("defaults to a single installment", func(t *testing.T) {
		var gotCount int
		svc := &mockExpenseService{
			createFn: func(_ string, _ services.ExpenseDraft, count int) ([]models.Expense, error) {
				gotCount = count
				return []models.Expense{{}}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/expenses", `{"date":"2024-03-10","description":"Lunch","amount":2550,`+
			`"category":"Alimentação","payment_method":"Pix","emotion":"Neutro"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotCount != 1 {
			t.Errorf("expected count 1, got %d", gotCount)
		}
	})

	tests := []struct {
		name string
		body string
		code string
	}{
		{"unparseable amount", `{"date":"2024-01-01","description":"x","amount":"abc","category":"c","payment_method":"p","emotion":"e"}`, "INVALID_INPUT"},
		{"fractional numeric amount", `{"date":"2024-01-01","description":"x","amount":10.5,"category":"c","payment_method":"p","emotion":"e"}`, "INVALID_INPUT"},
		{"bad date", `{"date":"2024-02-30","description":"x","amount":100,"category":"c","payment_method":"p","emotion":"e"}`, "INVALID_INPUT"},
		{"missing category", `{"date":"2024-01-01","description":"x","amount":100,"payment_method":"p","emotion":"e"}`, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}))
			rec := doRequest(r, "POST", "/expenses", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			assertErrorCode(t, parseJSON(t, rec), tt.code)
		})
	}

	t.Run("maps invalid installment count", func(t *testing.T) {
		svc := &mockExpenseService{
			createFn: func(_ string, _ services.ExpenseDraft, _ int) ([]models.Expense, error) {
				return nil, apperrors.ErrInvalidInstallments
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/expenses", `{"date":"2024-01-01","description":"x","amount":100,`+
			`"category":"c","payment_method":"p","emotion":"e","installments":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INSTALLMENTS")
	})
}

func TestExpenseHandler_GetExpenses(t *testing.T) {
	t.Run("builds the filter from the query", func(t *testing.T) {
		var got ledger.Filter
		var gotPage pagination.PageRequest
		svc := &mockExpenseService{
			listFn: func(_ string, filter ledger.Filter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
				got, gotPage = filter, page
				resp := pagination.NewPageResponse[models.Expense](nil, 2, 10, 0)
				return &resp, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/expenses?month=2&year=2024&category=Lazer&recurring=true&page=2&page_size=10", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Period == nil || *got.Period != (dates.Period{Year: 2024, Month: time.February}) {
			t.Errorf("unexpected period %v", got.Period)
		}
		if got.Category != "Lazer" || !got.RecurringOnly {
			t.Errorf("unexpected filter %+v", got)
		}
		if gotPage.Page != 2 || gotPage.PageSize != 10 {
			t.Errorf("unexpected page %+v", gotPage)
		}
	})

	t.Run("year alone filters the whole year", func(t *testing.T) {
		var got ledger.Filter
		svc := &mockExpenseService{
			listFn: func(_ string, filter ledger.Filter, _ pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
				got = filter
				resp := pagination.NewPageResponse[models.Expense](nil, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/expenses?year=2023", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.Period != nil || got.Year != 2023 {
			t.Errorf("unexpected filter %+v", got)
		}
	})

	t.Run("date range and roots", func(t *testing.T) {
		var got ledger.Filter
		svc := &mockExpenseService{
			listFn: func(_ string, filter ledger.Filter, _ pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
				got = filter
				resp := pagination.NewPageResponse[models.Expense](nil, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/expenses?from=2024-01-10&to=2024-02-05&roots=true", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.From == nil || !got.From.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected from %v", got.From)
		}
		if got.To == nil || !got.To.Equal(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected to %v", got.To)
		}
		if !got.RootsOnly || got.RecurringOnly {
			t.Errorf("unexpected flags %+v", got)
		}
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}))
		rec := doRequest(r, "GET", "/expenses?from=2024-03-01&to=2024-02-01", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("rejects roots=false", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}))
		rec := doRequest(r, "GET", "/expenses?roots=false", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects month 13", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}))
		rec := doRequest(r, "GET", "/expenses?month=13&year=2024", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_PERIOD")
	})

	t.Run("rejects page_size over 100", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}))
		rec := doRequest(r, "GET", "/expenses?page_size=500", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_Lists(t *testing.T) {
	var gotPeriod *dates.Period
	svc := &mockExpenseService{
		futureFn: func(_ string, period *dates.Period) ([]models.Expense, error) {
			gotPeriod = period
			return []models.Expense{{}, {}}, nil
		},
		installmentsFn: func(string) ([]models.Expense, error) {
			return []models.Expense{{}}, nil
		},
	}
	r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/expenses/future?period=2025-07", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotPeriod == nil || gotPeriod.Month != time.July {
		t.Errorf("unexpected period %v", gotPeriod)
	}
	if rows := parseJSON(t, rec)["expenses"].([]interface{}); len(rows) != 2 {
		t.Errorf("expected 2 future rows, got %d", len(rows))
	}

	rec = doRequest(r, "GET", "/expenses/installments", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestExpenseHandler_GetExpense(t *testing.T) {
	t.Run("returns 400 on malformed id", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}))
		rec := doRequest(r, "GET", "/expenses/42", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 for another user's expense", func(t *testing.T) {
		svc := &mockExpenseService{
			getFn: func(_, _ string) (*models.Expense, error) { return nil, apperrors.ErrExpenseNotFound },
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))
		rec := doRequest(r, "GET", "/expenses/"+testExpenseID, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "EXPENSE_NOT_FOUND")
	})
}

func TestExpenseHandler_UpdateExpense(t *testing.T) {
	var got services.ExpenseUpdate
	svc := &mockExpenseService{
		updateFn: func(_, _ string, upd services.ExpenseUpdate) (*models.Expense, error) {
			got = upd
			return &models.Expense{}, nil
		},
	}
	r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "PUT", "/expenses/"+testExpenseID, `{"amount":"12,34","date":"2024-05-01","essential":true}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Amount == nil || *got.Amount != 1234 {
		t.Errorf("expected amount 1234, got %v", got.Amount)
	}
	if got.Date == nil || got.Date.Day() != 1 || got.Description != nil {
		t.Errorf("unexpected update %+v", got)
	}
	if got.Essential == nil || !*got.Essential {
		t.Error("expected essential=true")
	}
}

func TestExpenseHandler_DeleteExpense(t *testing.T) {
	audit := &mockAuditService{}
	svc := &mockExpenseService{
		deleteFn: func(_, _ string) (int64, error) { return 3, nil },
	}
	r := setupExpenseRouter(NewExpenseHandler(svc, audit))

	rec := doRequest(r, "DELETE", "/expenses/"+testExpenseID, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if parseJSON(t, rec)["removed"] != float64(3) {
		t.Error("expected removed=3")
	}
	if len(audit.entries) != 1 || audit.entries[0].action != services.AuditDeleteExpense || audit.entries[0].resourceID != testExpenseID {
		t.Errorf("unexpected audit entries %+v", audit.entries)
	}
}
