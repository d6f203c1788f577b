package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/journal_entries_app/internal/core/ports/services"
	"github.com/SscSPs/journal_entries_app/internal/dto"
	"github.com/SscSPs/journal_entries_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type lookupHandler struct {
	lookupService portssvc.LookupSvc
}

// RegisterLookupRoutes registers the filter dropdown routes on a group scoped by :company_id.
func RegisterLookupRoutes(rg *gin.RouterGroup, lookupService portssvc.LookupSvc) {
	h := &lookupHandler{lookupService: lookupService}
	rg.GET("/accounts", h.listAccounts)
	rg.GET("/journals", h.listJournals)
}

// listAccounts godoc
// @Summary List active accounts
// @Tags lookups
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the company"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /companies/{company_id}/accounts [get]
func (h *lookupHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	accounts, err := h.lookupService.ListAccounts(c.Request.Context(), c.Param("company_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// listJournals godoc
// @Summary List active journals
// @Tags lookups
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the company"
// @Failure 500 {object} map[string]string "Failed to list journals"
// @Security BearerAuth
// @Router /companies/{company_id}/journals [get]
func (h *lookupHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	journals, err := h.lookupService.ListJournals(c.Request.Context(), c.Param("company_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list journals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListJournalsResponse(journals))
}
