package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/penwald/envelope_budget_app/internal/core/ports/services"
	"github.com/penwald/envelope_budget_app/internal/dto"
	"github.com/penwald/envelope_budget_app/internal/middleware"
)

type importHandler struct {
	importService portssvc.ImportSvcFacade
}

func newImportHandler(importService portssvc.ImportSvcFacade) *importHandler {
	return &importHandler{importService: importService}
}

func registerImportRoutes(group *gin.RouterGroup, importService portssvc.ImportSvcFacade) {
	h := newImportHandler(importService)
	group.POST("/import", h.importCSV)
}

// importCSV godoc
// @Summary Import a bank statement export
// @Description Parses CSV rows into ledger entries. Column mapping is auto-detected when omitted. Unparseable rows are skipped and counted.
// @Tags import
// @Accept json
// @Produce json
// @Param statement body dto.ImportRequest true "Raw CSV plus optional column mapping"
// @Success 200 {object} dto.ImportResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /import [post]
func (h *importHandler) importCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for importCSV", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	resp, err := h.importService.ImportCSV(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
