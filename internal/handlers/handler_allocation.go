package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/penwald/envelope_budget_app/internal/core/ports/services"
	"github.com/penwald/envelope_budget_app/internal/dto"
	"github.com/penwald/envelope_budget_app/internal/middleware"
)

// allocationHandler handles income-source management and distribution runs.
type allocationHandler struct {
	allocationService portssvc.AllocationSvcFacade
}

func newAllocationHandler(allocationService portssvc.AllocationSvcFacade) *allocationHandler {
	return &allocationHandler{allocationService: allocationService}
}

// registerAllocationRoutes registers the /income-source and /allocations routes.
func registerAllocationRoutes(group *gin.RouterGroup, allocationService portssvc.AllocationSvcFacade) {
	h := newAllocationHandler(allocationService)

	source := group.Group("/income-source")
	source.GET("", h.getIncomeSource)
	source.PUT("", h.upsertIncomeSource)

	allocations := group.Group("/allocations")
	allocations.POST("/distribute", h.distribute)
	allocations.POST("/gap-fill", h.gapFill)
}

// getIncomeSource godoc
// @Summary Get the active income source
// @Tags allocations
// @Produce json
// @Success 200 {object} dto.IncomeSourceResponse
// @Failure 404 {object} map[string]string "No income source configured"
// @Router /income-source [get]
func (h *allocationHandler) getIncomeSource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.allocationService.GetIncomeSource(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// upsertIncomeSource godoc
// @Summary Replace the active income source
// @Description Rule percentages may deviate from a 100 sum; the deviation is reported, never corrected
// @Tags allocations
// @Accept json
// @Produce json
// @Param source body dto.UpsertIncomeSourceRequest true "Income source"
// @Success 200 {object} dto.IncomeSourceResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /income-source [put]
func (h *allocationHandler) upsertIncomeSource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertIncomeSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for upsertIncomeSource", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	resp, err := h.allocationService.UpsertIncomeSource(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// distribute godoc
// @Summary Distribute pool money into envelopes for one payment slot
// @Description Returns duplicateWarning without applying when matching allocations already exist; pass force to override
// @Tags allocations
// @Accept json
// @Produce json
// @Param run body dto.DistributeRequest true "Distribution run"
// @Success 200 {object} dto.DistributeResponse
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Router /allocations/distribute [post]
func (h *allocationHandler) distribute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DistributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for distribute", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	resp, err := h.allocationService.Distribute(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// gapFill godoc
// @Summary Top up a prior month's deficits from the pool
// @Description Distributes proportionally against total deficit, ignoring percentage rules and linked categories
// @Tags allocations
// @Accept json
// @Produce json
// @Param run body dto.GapFillRequest true "Gap fill run"
// @Success 200 {object} dto.DistributeResponse
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Router /allocations/gap-fill [post]
func (h *allocationHandler) gapFill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GapFillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for gapFill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	resp, err := h.allocationService.GapFill(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
