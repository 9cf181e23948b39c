package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cofre/internal/services"
)

// RecurrenceHandler handles recurring entries and their monthly materialization.
type RecurrenceHandler struct {
	recurrenceService services.RecurrenceServicer
	auditService      services.AuditServicer
	concurrency       int
}

// NewRecurrenceHandler creates a new RecurrenceHandler. concurrency bounds the
// number of owners processed at once by the scheduled run.
func NewRecurrenceHandler(recurrenceService services.RecurrenceServicer, auditService services.AuditServicer, concurrency int) *RecurrenceHandler {
	return &RecurrenceHandler{recurrenceService: recurrenceService, auditService: auditService, concurrency: concurrency}
}

// StopRecurringRequest selects the recurring root to stop.
type StopRecurringRequest struct {
	Kind string `json:"kind" binding:"required,ledger_kind"`
}

// ListRecurring lists the user's recurring roots.
// @Summary     List recurring entries
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.RecurringEntries "Recurring expenses and incomes"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /recurring [get]
func (h *RecurrenceHandler) ListRecurring(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entries, err := h.recurrenceService.ListRecurring(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// StopRecurring turns a recurring root into a one-off entry. Occurrences
// already generated are kept.
// @Summary     Stop a recurring entry
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Recurring root ID"
// @Param       request body StopRecurringRequest true "Ledger of the entry"
// @Success     200 {object} map[string]interface{} "Stopped"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Recurring entry not found"
// @Router      /recurring/{id}/stop [post]
func (h *RecurrenceHandler) StopRecurring(c *gin.Context) {
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

	var req StopRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	kind := services.LedgerKind(req.Kind)
	if err := h.recurrenceService.StopRecurring(c.Request.Context(), userID, kind, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditStopRecurring, req.Kind, id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Recurrence stopped"})
}

// Advance generates the user's recurring occurrences for one month.
// @Summary     Generate recurring entries
// @Description Create this month's copy of every recurring root. Defaults to next month. Running twice creates nothing new.
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Target month (YYYY-MM), default next month"
// @Success     200 {object} services.AdvanceResult "Run result"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /recurring/advance [post]
func (h *RecurrenceHandler) Advance(c *gin.Context) {
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

	result, err := h.recurrenceService.Advance(c.Request.Context(), userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditRecurrenceRun, "recurrence", "", c.ClientIP(),
		map[string]any{"period": result.Period.String(), "created": result.Created, "failed": result.Failed})

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// AdvanceAll runs the recurrence for every active user. It is the entry point
// for the external scheduler and sits behind the pipeline API key.
// @Summary     Generate recurring entries for all users
// @Tags        pipeline
// @Produce     json
// @Security    PipelineKey
// @Param       period query string false "Target month (YYYY-MM), default next month"
// @Success     200 {object} services.BatchResult "Batch result"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Router      /pipeline/recurrence/advance [post]
func (h *RecurrenceHandler) AdvanceAll(c *gin.Context) {
	period, err := optionalPeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.recurrenceService.AdvanceAll(c.Request.Context(), period, h.concurrency)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
