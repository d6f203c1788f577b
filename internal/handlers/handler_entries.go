package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/journal_entries_app/internal/core/ports/services"
	"github.com/SscSPs/journal_entries_app/internal/dto"
	"github.com/SscSPs/journal_entries_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryHandler handles HTTP requests related to journal entries.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

func newEntryHandler(es portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{entryService: es}
}

// RegisterEntryRoutes registers entry routes on a group already scoped by :company_id.
func RegisterEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	entries := rg.Group("/entries")
	{
		entries.GET("", h.listEntries)
		entries.GET("/:entry_id", h.getEntry)
		entries.PATCH("/:entry_id/status", h.updateEntryStatus)
		entries.DELETE("/:entry_id", h.deleteEntry)
	}
	// Kept outside /entries so it cannot collide with /entries/:entry_id
	rg.GET("/entry-stats", h.getEntryStats)
}

// requestUser returns the authenticated user, answering 401 itself when there is none.
func requestUser(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists one page of a company's journal entries, with lines, filtered and sorted.
// @Tags entries
// @Produce json
// @Param company_id path string true "Company ID"
// @Param sort_by query string false "Sort column" Enums(entry_date, journal_id, description, reference_number) default(entry_date)
// @Param sort_order query string false "Sort direction" Enums(asc, desc) default(desc)
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "Page size (max 100)" default(20)
// @Param date_from query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param journal_id query string false "Journal ID"
// @Param account_id query string false "Entries with at least one line on this account"
// @Param reference query string false "Case-insensitive substring of the reference number"
// @Param description query string false "Case-insensitive substring of the description"
// @Param status query string false "Entry status" Enums(draft, posted, cancelled)
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the company"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /companies/{company_id}/entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	var q dto.ListEntriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	query, err := q.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.entryService.ListEntries(c.Request.Context(), companyID, userID, query)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntriesResponse(page))
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Retrieves one entry with its lines and totals.
// @Tags entries
// @Produce json
// @Param company_id path string true "Company ID"
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the company"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Security BearerAuth
// @Router /companies/{company_id}/entries/{entry_id} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	entryID := c.Param("entry_id")

	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), companyID, entryID, userID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("entry_id", entryID)), err, "Failed to retrieve entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateEntryStatus godoc
// @Summary Update the status of a journal entry
// @Tags entries
// @Accept json
// @Param company_id path string true "Company ID"
// @Param entry_id path string true "Entry ID"
// @Param status body dto.UpdateEntryStatusRequest true "New status"
// @Success 204 "Status updated"
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Read-only member or not a member"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry status"
// @Security BearerAuth
// @Router /companies/{company_id}/entries/{entry_id}/status [patch]
func (h *entryHandler) updateEntryStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	entryID := c.Param("entry_id")

	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateEntryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntryStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("entry_id", entryID))
	if err := h.entryService.UpdateEntryStatus(c.Request.Context(), companyID, entryID, userID, req.Status); err != nil {
		respondServiceError(c, logger, err, "Failed to update entry status")
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Description Deletes an entry together with its lines.
// @Tags entries
// @Param company_id path string true "Company ID"
// @Param entry_id path string true "Entry ID"
// @Success 204 "Entry deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Read-only member or not a member"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Security BearerAuth
// @Router /companies/{company_id}/entries/{entry_id} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	entryID := c.Param("entry_id")

	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("entry_id", entryID))
	if err := h.entryService.DeleteEntry(c.Request.Context(), companyID, entryID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete entry")
		return
	}

	logger.Info("Entry deleted")
	c.Status(http.StatusNoContent)
}

// getEntryStats godoc
// @Summary Journal entry statistics
// @Description Counts entries per status and sums debit and credit amounts.
// @Tags entries
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} dto.EntryStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the company"
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Security BearerAuth
// @Router /companies/{company_id}/entry-stats [get]
func (h *entryHandler) getEntryStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	stats, err := h.entryService.GetEntryStats(c.Request.Context(), companyID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryStatsResponse(stats))
}
