package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/penwald/envelope_budget_app/internal/core/ports/services"
	"github.com/penwald/envelope_budget_app/internal/dto"
	"github.com/penwald/envelope_budget_app/internal/middleware"
)

type fundingHandler struct {
	fundingService portssvc.FundingSvcFacade
}

func newFundingHandler(fundingService portssvc.FundingSvcFacade) *fundingHandler {
	return &fundingHandler{fundingService: fundingService}
}

// registerFundingRoutes registers the funding route under /transactions.
func registerFundingRoutes(group *gin.RouterGroup, fundingService portssvc.FundingSvcFacade) {
	h := newFundingHandler(fundingService)
	group.PUT("/transactions/:transactionID/funding", h.fundExpense)
}

// fundExpense godoc
// @Summary Replace the funding configuration of a one-time expense
// @Description Existing funding children are removed and rebuilt from the requested source amounts. Insufficient funds reject the whole request before any change.
// @Tags funding
// @Accept json
// @Produce json
// @Param transactionID path string true "Target transaction ID"
// @Param funding body dto.FundRequest true "Source envelope amounts"
// @Success 200 {object} dto.FundResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Router /transactions/{transactionID}/funding [put]
func (h *fundingHandler) fundExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for fundExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	resp, err := h.fundingService.FundExpense(c.Request.Context(), transactionID, req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
