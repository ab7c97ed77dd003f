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

type CostHandler struct {
	service service.CostService
	log     *logger.Logger
}

func NewCostHandler(service service.CostService, log *logger.Logger) *CostHandler {
	return &CostHandler{service: service, log: log}
}

// CreateCost records a new business cost
func (h *CostHandler) CreateCost(c *gin.Context) {
	var req dto.CreateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateCost(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetCost returns a cost by ID
func (h *CostHandler) GetCost(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetCost(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListCosts returns all recorded costs
func (h *CostHandler) ListCosts(c *gin.Context) {
	resp, err := h.service.ListCosts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func parseIDParam(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, ierr.NewError("invalid id").
			WithHintf("%q is not a valid id", raw).
			Mark(ierr.ErrValidation)
	}
	return id, nil
}
