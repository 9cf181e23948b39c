package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cofre/internal/dates"
	"cofre/internal/money"
	"cofre/internal/services"
)

// PlanningHandler handles monthly reflections and declared monthly income.
type PlanningHandler struct {
	reflectionService    services.ReflectionServicer
	monthlyIncomeService services.MonthlyIncomeServicer
}

// NewPlanningHandler creates a new PlanningHandler.
func NewPlanningHandler(reflectionService services.ReflectionServicer, monthlyIncomeService services.MonthlyIncomeServicer) *PlanningHandler {
	return &PlanningHandler{reflectionService: reflectionService, monthlyIncomeService: monthlyIncomeService}
}

// ReflectionRequest represents the payload for saving a monthly reflection.
// Saving twice for the same month replaces the earlier one.
type ReflectionRequest struct {
	Period         string `json:"period" binding:"required,period"`
	MoneyFeeling   string `json:"money_feeling"`
	WhatWorked     string `json:"what_worked"`
	WhatToAdjust   string `json:"what_to_adjust"`
	EmotionalScore int    `json:"emotional_score" binding:"omitempty,min=1,max=10"`
}

// MonthlyIncomeRequest represents the payload for declaring a month's income.
type MonthlyIncomeRequest struct {
	Period      string       `json:"period" binding:"required,period"`
	Amount      money.Amount `json:"amount"`
	Description string       `json:"description" binding:"max=255"`
}

// SaveReflection creates or replaces the reflection for a month.
// @Summary     Save a monthly reflection
// @Tags        planning
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ReflectionRequest true "Reflection"
// @Success     200 {object} models.MonthlyReflection "Saved reflection"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reflections [put]
func (h *PlanningHandler) SaveReflection(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	period, _ := dates.ParsePeriod(req.Period)

	reflection, err := h.reflectionService.UpsertReflection(c.Request.Context(), userID, services.ReflectionInput{
		Period:         period,
		MoneyFeeling:   req.MoneyFeeling,
		WhatWorked:     req.WhatWorked,
		WhatToAdjust:   req.WhatToAdjust,
		EmotionalScore: req.EmotionalScore,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reflection": reflection})
}

// GetReflections lists every reflection, newest month first.
// @Summary     List monthly reflections
// @Tags        planning
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Reflections"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reflections [get]
func (h *PlanningHandler) GetReflections(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	reflections, err := h.reflectionService.ListReflections(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reflections": reflections})
}

// GetReflection returns the reflection of one month.
// @Summary     Get a monthly reflection
// @Tags        planning
// @Produce     json
// @Security    BearerAuth
// @Param       period path string true "Month (YYYY-MM)"
// @Success     200 {object} models.MonthlyReflection "Reflection"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     404 {object} ErrorResponse "Reflection not found"
// @Router      /reflections/{period} [get]
func (h *PlanningHandler) GetReflection(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	period, err := pathPeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	reflection, err := h.reflectionService.GetReflection(c.Request.Context(), userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reflection": reflection})
}

// DeleteReflection removes a reflection.
// @Summary     Delete a monthly reflection
// @Tags        planning
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Reflection ID"
// @Success     200 {object} map[string]interface{} "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Reflection not found"
// @Router      /reflections/id/{id} [delete]
func (h *PlanningHandler) DeleteReflection(c *gin.Context) {
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

	if err := h.reflectionService.DeleteReflection(c.Request.Context(), userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reflection deleted successfully"})
}

// SaveMonthlyIncome declares the income of a month, replacing any earlier value.
// @Summary     Declare monthly income
// @Tags        planning
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body MonthlyIncomeRequest true "Declared income"
// @Success     200 {object} models.MonthlyIncome "Saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /monthly-income [put]
func (h *PlanningHandler) SaveMonthlyIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req MonthlyIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	period, _ := dates.ParsePeriod(req.Period)

	mi, err := h.monthlyIncomeService.UpsertMonthlyIncome(c.Request.Context(), userID, period, req.Amount.Cents(), req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"monthly_income": mi})
}

// GetMonthlyIncome returns the declared income of a month. A month without a
// declaration answers with amount 0.
// @Summary     Get declared monthly income
// @Tags        planning
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Month (YYYY-MM), default current"
// @Success     200 {object} models.MonthlyIncome "Declared income"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Router      /monthly-income [get]
func (h *PlanningHandler) GetMonthlyIncome(c *gin.Context) {
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

	mi, err := h.monthlyIncomeService.GetMonthlyIncome(c.Request.Context(), userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"monthly_income": mi})
}

// GetMonthlyIncomes lists the declarations of one year.
// @Summary     List declared monthly income
// @Tags        planning
// @Produce     json
// @Security    BearerAuth
// @Param       year query int false "Year, default current"
// @Success     200 {object} map[string]interface{} "Declarations, January first"
// @Failure     400 {object} ErrorResponse "Invalid year"
// @Router      /monthly-income/year [get]
func (h *PlanningHandler) GetMonthlyIncomes(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := queryYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	list, err := h.monthlyIncomeService.ListMonthlyIncomes(c.Request.Context(), userID, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"monthly_incomes": list})
}
