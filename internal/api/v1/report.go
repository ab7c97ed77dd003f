package v1

import (
	"net/http"

	"github.com/AbdoTarek2211/Cost-Management/internal/api/dto"
	"github.com/AbdoTarek2211/Cost-Management/internal/logger"
	"github.com/AbdoTarek2211/Cost-Management/internal/service"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service service.ReportService
	log     *logger.Logger
}

func NewReportHandler(service service.ReportService, log *logger.Logger) *ReportHandler {
	return &ReportHandler{service: service, log: log}
}

// GetStatusReport returns the status report, optionally filtered
func (h *ReportHandler) GetStatusReport(c *gin.Context) {
	resp, err := h.service.GetStatusReport(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetClientReport returns the client report, optionally filtered
func (h *ReportHandler) GetClientReport(c *gin.Context) {
	resp, err := h.service.GetClientReport(c.Request.Context(), c.Query("client"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetDateRangeReport returns invoices created within the given bounds
func (h *ReportHandler) GetDateRangeReport(c *gin.Context) {
	req := dto.DateRangeReportRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	start, end, err := req.Parse()
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetDateRangeReport(c.Request.Context(), start, end)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSummaryStatistics returns the by-status and by-client aggregations
func (h *ReportHandler) GetSummaryStatistics(c *gin.Context) {
	resp, err := h.service.GetSummaryStatistics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
