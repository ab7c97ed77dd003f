package v1

import (
	"net/http"

	"github.com/AbdoTarek2211/Cost-Management/internal/api/dto"
	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
	"github.com/AbdoTarek2211/Cost-Management/internal/logger"
	"github.com/AbdoTarek2211/Cost-Management/internal/service"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service service.PaymentService
	log     *logger.Logger
}

func NewPaymentHandler(service service.PaymentService, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{service: service, log: log}
}

// RecordPayment records a payment against an invoice and recomputes
// the invoice's status
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	invoiceID, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.RecordPayment(c.Request.Context(), invoiceID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetPaymentHistory returns an invoice's payments ordered by paid time
func (h *PaymentHandler) GetPaymentHistory(c *gin.Context) {
	invoiceID, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetPaymentHistory(c.Request.Context(), invoiceID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GenerateReceipt streams the PDF receipt for a payment
func (h *PaymentHandler) GenerateReceipt(c *gin.Context) {
	paymentID, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	doc, filename, err := h.service.GenerateReceipt(c.Request.Context(), paymentID)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
