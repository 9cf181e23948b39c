package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "cofre/internal/errors"
	"cofre/internal/ledger"
	"cofre/internal/money"
	"cofre/internal/pagination"
	"cofre/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// CreateExpenseRequest represents the request payload for creating an expense.
// Amount is the total of the purchase; with Installments > 1 it is split
// across monthly installments.
type CreateExpenseRequest struct {
	Date          string       `json:"date" binding:"required,calendar_date"`
	Description   string       `json:"description" binding:"required,max=255"`
	Amount        money.Amount `json:"amount" binding:"required"`
	Category      string       `json:"category" binding:"required,max=100"`
	Subcategory   string       `json:"subcategory" binding:"max=100"`
	PaymentMethod string       `json:"payment_method" binding:"required,max=50"`
	Essential     bool         `json:"essential"`
	Emotion       string       `json:"emotion" binding:"required,max=50"`
	Note          string       `json:"note"`
	Recurring     bool         `json:"recurring"`
	Installments  *int         `json:"installments" binding:"omitempty,max=360"`
}

// UpdateExpenseRequest represents the request payload for updating an expense.
type UpdateExpenseRequest struct {
	Date          *string       `json:"date" binding:"omitempty,calendar_date"`
	Description   *string       `json:"description" binding:"omitempty,max=255"`
	Amount        *money.Amount `json:"amount"`
	Category      *string       `json:"category" binding:"omitempty,max=100"`
	Subcategory   *string       `json:"subcategory" binding:"omitempty,max=100"`
	PaymentMethod *string       `json:"payment_method" binding:"omitempty,max=50"`
	Essential     *bool         `json:"essential"`
	Emotion       *string       `json:"emotion" binding:"omitempty,max=50"`
	Note          *string       `json:"note"`
	Recurring     *bool         `json:"recurring"`
}

// ledgerFilter reads the list filters shared by the expense and income listings.
func ledgerFilter(c *gin.Context) (ledger.Filter, pagination.PageRequest, error) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return ledger.Filter{}, page, invalidInput(err)
	}

	period, err := optionalPeriod(c)
	if err != nil {
		return ledger.Filter{}, page, err
	}
	filter := ledger.Filter{Period: period, Category: c.Query("category")}
	if period == nil && c.Query("year") != "" {
		if filter.Year, err = queryYear(c); err != nil {
			return ledger.Filter{}, page, err
		}
	}

	for _, bound := range []struct {
		param string
		dst   **time.Time
	}{{"from", &filter.From}, {"to", &filter.To}} {
		if v := c.Query(bound.param); v != "" {
			day, err := parseDate(bound.param, v)
			if err != nil {
				return ledger.Filter{}, page, err
			}
			*bound.dst = &day
		}
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return ledger.Filter{}, page, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must not be before from")
	}

	if filter.RecurringOnly, err = trueFlag(c, "recurring"); err != nil {
		return ledger.Filter{}, page, err
	}
	if filter.RootsOnly, err = trueFlag(c, "roots"); err != nil {
		return ledger.Filter{}, page, err
	}
	return filter, page, nil
}

// trueFlag reads an optional query flag that may only be "true".
func trueFlag(c *gin.Context, param string) (bool, error) {
	switch c.Query(param) {
	case "":
		return false, nil
	case "true":
		return true, nil
	default:
		return false, apperrors.WithMessage(apperrors.ErrInvalidInput, param+" must be 'true' when present")
	}
}

// CreateExpense handles the creation of an expense or an installment group.
// @Summary     Create an expense
// @Description Record an expense. With installments > 1 the amount is split into monthly installments.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} map[string]interface{} "Created expense rows"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	count := 1
	if req.Installments != nil {
		count = *req.Installments
	}

	rows, err := h.expenseService.CreateInstallmentGroup(c.Request.Context(), userID, services.ExpenseDraft{
		Date:          date,
		Description:   req.Description,
		Amount:        req.Amount.Cents(),
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		PaymentMethod: req.PaymentMethod,
		Essential:     req.Essential,
		Emotion:       req.Emotion,
		Note:          req.Note,
		Recurring:     req.Recurring,
	}, count)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": rows[0], "expenses": rows})
}

// GetExpenses handles listing expenses for the authenticated user.
// @Summary     Get expenses
// @Description Get a paginated list of expenses, newest first
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       period    query string false "Month in YYYY-MM format"
// @Param       month     query int    false "Month (1-12)"
// @Param       year      query int    false "Year"
// @Param       category  query string false "Filter by category"
// @Param       from      query string false "First day (YYYY-MM-DD)"
// @Param       to        query string false "Last day (YYYY-MM-DD)"
// @Param       recurring query bool   false "Only recurring entries"
// @Param       roots     query bool   false "Only roots (no installments 2..N or generated occurrences)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, page, err := ledgerFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.expenseService.ListExpenses(c.Request.Context(), userID, filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetInstallments lists every expense that belongs to a multi-installment purchase.
// @Summary     Get installments
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Installment rows, oldest first"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/installments [get]
func (h *ExpenseHandler) GetInstallments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.expenseService.ListInstallments(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": rows})
}

// GetFutureExpenses lists expenses dated after today.
// @Summary     Get future expenses
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Restrict to one month (YYYY-MM)"
// @Success     200 {object} map[string]interface{} "Future expenses, soonest first"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/future [get]
func (h *ExpenseHandler) GetFutureExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	period, err := optionalPeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.expenseService.ListFutureExpenses(c.Request.Context(), userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": rows})
}

// GetExpense returns a single expense.
// @Summary     Get an expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} models.Expense "Expense"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense changes fields of one expense.
// @Summary     Update an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Fields to change"
// @Success     200 {object} models.Expense "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     409 {object} ErrorResponse "Group already has an entry on that date"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	upd := services.ExpenseUpdate{
		Description:   req.Description,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		PaymentMethod: req.PaymentMethod,
		Essential:     req.Essential,
		Emotion:       req.Emotion,
		Note:          req.Note,
		Recurring:     req.Recurring,
	}
	if req.Date != nil {
		date, err := parseDate("date", *req.Date)
		if err != nil {
			respondWithError(c, err)
			return
		}
		upd.Date = &date
	}
	if req.Amount != nil {
		cents := req.Amount.Cents()
		upd.Amount = &cents
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), userID, id, upd)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense removes an expense. Deleting the first row of an installment
// group or a recurring root removes the whole group.
// @Summary     Delete an expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} map[string]interface{} "Number of rows removed"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	removed, err := h.expenseService.DeleteExpense(c.Request.Context(), userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditDeleteExpense, "expense", id, c.ClientIP(),
		map[string]any{"removed": removed})

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully", "removed": removed})
}
