package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
	portssvc "github.com/penwald/envelope_budget_app/internal/core/ports/services"
	"github.com/penwald/envelope_budget_app/internal/middleware"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

func registerReportingRoutes(group *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)
	group.GET("/reports/monthly", h.monthlyReport)
}

// monthlyReport godoc
// @Summary Envelope balances and unallocated pool for one month
// @Description The month query parameter uses YYYY-MM; it defaults to the current month.
// @Tags reports
// @Produce json
// @Param month query string false "Month to report on (YYYY-MM)"
// @Success 200 {object} domain.BudgetReport
// @Failure 400 {object} map[string]string "Invalid month"
// @Router /reports/monthly [get]
func (h *reportingHandler) monthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	anchor := time.Now().UTC()
	if month := c.Query("month"); month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected YYYY-MM"})
			return
		}
		anchor = parsed
	}

	report, err := h.reportingService.MonthlyReport(c.Request.Context(), domain.MonthWindow(anchor))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
