package v1

import (
	"net/http"
	"strconv"

	"github.com/AbdoTarek2211/Cost-Management/internal/api/dto"
	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
	"github.com/AbdoTarek2211/Cost-Management/internal/logger"
	"github.com/AbdoTarek2211/Cost-Management/internal/service"
	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	service service.InvoiceService
	log     *logger.Logger
}

func NewInvoiceHandler(service service.InvoiceService, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{service: service, log: log}
}

// CreateInvoice creates a new invoice in Draft status
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateInvoice(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetInvoice returns an invoice with computed totals and payments
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetInvoice(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListInvoices returns all invoices
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	resp, err := h.service.ListInvoices(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateInvoice applies a partial update; a supplied item list replaces
// the existing one
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateInvoice(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetDueReminders lists unpaid invoices due within the threshold
func (h *InvoiceHandler) GetDueReminders(c *gin.Context) {
	var daysUntilDue *int
	if raw := c.Query("days_until_due"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			c.Error(ierr.NewError("invalid days_until_due").
				WithHint("days_until_due must be a non-negative integer").
				Mark(ierr.ErrValidation))
			return
		}
		daysUntilDue = &days
	}

	resp, err := h.service.GetDueReminders(c.Request.Context(), daysUntilDue)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
