package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/accounts_movements_service/internal/apperrors"
	"github.com/SscSPs/accounts_movements_service/internal/core/domain"
	portssvc "github.com/SscSPs/accounts_movements_service/internal/core/ports/services"
	"github.com/SscSPs/accounts_movements_service/internal/dto"
	"github.com/SscSPs/accounts_movements_service/internal/middleware"
	"github.com/SscSPs/accounts_movements_service/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to account statement reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	limits           pagination.Limits
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, limits pagination.Limits) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		limits:           limits,
	}
}

// RegisterReportingRoutes registers the report routes on rg
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, limits pagination.Limits) {
	h := newReportingHandler(reportingService, limits)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("", h.getAccountStatementReport)
		reportingGroup.GET("/plain", h.getPlainReport)
	}
}

// reportRequest is the parsed and validated form of a report query.
type reportRequest struct {
	page       domain.PageRequest
	customerID *int64
	start      time.Time
	end        time.Time
}

// parseReportRequest binds and validates the shared report parameters. It
// writes a 400 response and returns false when the request is unusable.
func (h *reportingHandler) parseReportRequest(c *gin.Context, logger *slog.Logger) (reportRequest, bool) {
	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.ValidationMessage(err)})
		return reportRequest{}, false
	}

	start, end, err := query.Dates()
	if err != nil {
		logger.Warn("Invalid report dates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return reportRequest{}, false
	}
	if start.After(end) {
		logger.Warn("Invalid date range",
			slog.String("startDate", query.StartDate),
			slog.String("endDate", query.EndDate))
		c.JSON(http.StatusBadRequest, gin.H{"error": "start date cannot be after end date"})
		return reportRequest{}, false
	}

	page, err := pagination.ParsePageRequest(c.Query("page"), c.Query("size"), h.limits)
	if err != nil {
		logger.Warn("Invalid paging parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return reportRequest{}, false
	}

	return reportRequest{page: page, customerID: query.CustomerID, start: start, end: end}, true
}

// writeReportError maps a service error onto an HTTP response
func writeReportError(c *gin.Context, logger *slog.Logger, req reportRequest, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidRange), errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Rejected report date range", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrCustomerNotFound):
		logger.Warn("Customer not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Customer with ID %d does not exist", derefID(req.customerID))})
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		logger.Error("Customer directory unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
	default:
		logger.Error("Failed to generate report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
	}
}

func derefID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func requestLogger(c *gin.Context, report string, req reportRequest) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("report", report),
		slog.String("startDate", req.start.Format(dto.DateLayout)),
		slog.String("endDate", req.end.Format(dto.DateLayout)),
		slog.Int("page", req.page.Page),
		slog.Int("size", req.page.Size),
	)
	if req.customerID != nil {
		logger = logger.With(slog.Int64("customer_id", *req.customerID))
	}
	return logger
}

// getAccountStatementReport godoc
// @Summary Generate account statement report
// @Description Returns one nested statement per account with movements between startDate and endDate. totalElements counts matching accounts and may exceed the number of returned items when a customer cannot be resolved.
// @Tags reports
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Param customerId query int false "Restrict the report to one customer"
// @Param page query int false "Zero-based page number" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.PageResponse[domain.AccountStatementReport]
// @Failure 400 {object} map[string]string "Invalid input or date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 503 {object} map[string]string "Customer directory unavailable"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports [get]
func (h *reportingHandler) getAccountStatementReport(c *gin.Context) {
	req, ok := h.parseReportRequest(c, middleware.GetLoggerFromCtx(c.Request.Context()))
	if !ok {
		return
	}
	logger := requestLogger(c, "statement", req)
	logger.Info("Received request to generate account statement report")

	page, err := h.reportingService.AccountStatementReport(c.Request.Context(), req.page, req.customerID, req.start, req.end)
	if err != nil {
		writeReportError(c, logger, req, err)
		return
	}

	if len(page.Content) == 0 {
		logger.Warn("No accounts found for the requested range")
	}
	logger.Info("Account statement report generated successfully",
		slog.Int("returned", len(page.Content)),
		slog.Int64("total_elements", page.TotalElements))
	c.JSON(http.StatusOK, dto.ToPageResponse(page))
}

// getPlainReport godoc
// @Summary Generate plain movement report
// @Description Returns one flat summary row per account with movements between startDate and endDate.
// @Tags reports
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Param customerId query int false "Restrict the report to one customer"
// @Param page query int false "Zero-based page number" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.PageResponse[domain.PlainMovementReport]
// @Failure 400 {object} map[string]string "Invalid input or date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 503 {object} map[string]string "Customer directory unavailable"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/plain [get]
func (h *reportingHandler) getPlainReport(c *gin.Context) {
	req, ok := h.parseReportRequest(c, middleware.GetLoggerFromCtx(c.Request.Context()))
	if !ok {
		return
	}
	logger := requestLogger(c, "plain", req)
	logger.Info("Received request to generate plain movement report")

	page, err := h.reportingService.PlainReport(c.Request.Context(), req.page, req.customerID, req.start, req.end)
	if err != nil {
		writeReportError(c, logger, req, err)
		return
	}

	logger.Info("Plain movement report generated successfully", slog.Int("row_count", len(page.Content)))
	c.JSON(http.StatusOK, dto.ToPageResponse(page))
}
