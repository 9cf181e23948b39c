package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "cofre/internal/errors"
	"cofre/internal/services"
)

// DashboardHandler serves the read-only reports.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
	forecastService  services.ForecastServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer, forecastService services.ForecastServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, forecastService: forecastService}
}

// GetSummary returns the month's spending breakdown.
// @Summary     Monthly summary
// @Description Expenses of the month by category, payment method and emotion, with alerts
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Month (YYYY-MM), default current"
// @Param       month  query int    false "Month (1-12)"
// @Param       year   query int    false "Year"
// @Success     200 {object} report.Summary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
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

	summary, err := h.dashboardService.SummarizePeriod(c.Request.Context(), userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetHealth classifies the month's spending against income.
// @Summary     Financial health
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Month (YYYY-MM), default current"
// @Success     200 {object} report.Health "Health"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/health [get]
func (h *DashboardHandler) GetHealth(c *gin.Context) {
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

	health, err := h.dashboardService.Health(c.Request.Context(), userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"health": health})
}

// GetIndicators returns the month's income, expenses and balance.
// @Summary     Monthly indicators
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Month (YYYY-MM), default current"
// @Success     200 {object} report.Indicators "Indicators"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/indicators [get]
func (h *DashboardHandler) GetIndicators(c *gin.Context) {
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

	indicators, err := h.dashboardService.Indicators(c.Request.Context(), userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"indicators": indicators})
}

// GetAnnual returns month-by-month totals for a year.
// @Summary     Annual overview
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       year query int false "Year, default current"
// @Success     200 {object} report.AnnualOverview "Annual overview"
// @Failure     400 {object} ErrorResponse "Invalid year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/annual [get]
func (h *DashboardHandler) GetAnnual(c *gin.Context) {
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

	overview, err := h.dashboardService.Annual(c.Request.Context(), userID, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"annual": overview})
}

// GetForecast lists future entries and recurring projections.
// @Summary     Forecast
// @Description Future expenses plus projected recurring entries for the next months
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Months ahead (1-12, default 3)"
// @Success     200 {object} services.Forecast "Forecast"
// @Failure     400 {object} ErrorResponse "Invalid months"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/forecast [get]
func (h *DashboardHandler) GetForecast(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months := 0
	if raw := c.Query("months"); raw != "" {
		if months, err = strconv.Atoi(raw); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be a number"))
			return
		}
	}

	forecast, err := h.forecastService.Upcoming(c.Request.Context(), userID, months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"forecast": forecast})
}
