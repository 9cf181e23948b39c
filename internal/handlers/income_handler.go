package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cofre/internal/money"
	"cofre/internal/services"
)

// IncomeHandler handles income-related requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
	auditService  services.AuditServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer, auditService services.AuditServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService, auditService: auditService}
}

// CreateIncomeRequest represents the request payload for recording an income.
type CreateIncomeRequest struct {
	Date        string       `json:"date" binding:"required,calendar_date"`
	Description string       `json:"description" binding:"required,max=255"`
	Amount      money.Amount `json:"amount" binding:"required"`
	Category    string       `json:"category" binding:"max=100"`
	Subcategory string       `json:"subcategory" binding:"max=100"`
	IncomeType  string       `json:"income_type" binding:"max=50"`
	Note        string       `json:"note"`
	Recurring   bool         `json:"recurring"`
}

// UpdateIncomeRequest represents the request payload for updating an income.
type UpdateIncomeRequest struct {
	Date        *string       `json:"date" binding:"omitempty,calendar_date"`
	Description *string       `json:"description" binding:"omitempty,max=255"`
	Amount      *money.Amount `json:"amount"`
	Category    *string       `json:"category" binding:"omitempty,max=100"`
	Subcategory *string       `json:"subcategory" binding:"omitempty,max=100"`
	IncomeType  *string       `json:"income_type" binding:"omitempty,max=50"`
	Note        *string       `json:"note"`
	Recurring   *bool         `json:"recurring"`
}

// CreateIncome records an income.
// @Summary     Create an income
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateIncomeRequest true "Income details"
// @Success     201 {object} models.Income "Income created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.CreateIncome(c.Request.Context(), userID, services.IncomeDraft{
		Date:        date,
		Description: req.Description,
		Amount:      req.Amount.Cents(),
		Category:    req.Category,
		Subcategory: req.Subcategory,
		IncomeType:  req.IncomeType,
		Note:        req.Note,
		Recurring:   req.Recurring,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"income": income})
}

// GetIncomes lists incomes for the authenticated user.
// @Summary     Get incomes
// @Tags        incomes
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
// @Success     200 {object} pagination.PageResponse[models.Income] "Paginated incomes"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /incomes [get]
func (h *IncomeHandler) GetIncomes(c *gin.Context) {
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

	result, err := h.incomeService.ListIncomes(c.Request.Context(), userID, filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetIncomeSummary totals the month's incomes by type.
// @Summary     Income summary
// @Tags        incomes
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Month in YYYY-MM format (default current)"
// @Success     200 {object} report.IncomeSummary "Income summary"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /incomes/summary [get]
func (h *IncomeHandler) GetIncomeSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	period, err := queryPeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.incomeService.SummarizeIncomes(c.Request.Context(), userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetIncome returns a single income.
// @Summary     Get an income
// @Tags        incomes
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Income ID"
// @Success     200 {object} models.Income "Income"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Router      /incomes/{id} [get]
func (h *IncomeHandler) GetIncome(c *gin.Context) {
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

	income, err := h.incomeService.GetIncome(c.Request.Context(), userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// UpdateIncome changes fields of one income.
// @Summary     Update an income
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Income ID"
// @Param       request body UpdateIncomeRequest true "Fields to change"
// @Success     200 {object} models.Income "Updated income"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     409 {object} ErrorResponse "Group already has an entry on that date"
// @Router      /incomes/{id} [put]
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
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

	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	upd := services.IncomeUpdate{
		Description: req.Description,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		IncomeType:  req.IncomeType,
		Note:        req.Note,
		Recurring:   req.Recurring,
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

	income, err := h.incomeService.UpdateIncome(c.Request.Context(), userID, id, upd)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// DeleteIncome removes an income. Deleting a recurring root also removes the
// occurrences generated from it.
// @Summary     Delete an income
// @Tags        incomes
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Income ID"
// @Success     200 {object} map[string]interface{} "Number of rows removed"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Router      /incomes/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
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

	removed, err := h.incomeService.DeleteIncome(c.Request.Context(), userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditDeleteIncome, "income", id, c.ClientIP(),
		map[string]any{"removed": removed})

	c.JSON(http.StatusOK, gin.H{"message": "Income deleted successfully", "removed": removed})
}
