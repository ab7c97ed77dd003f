package dto

import (
	"time"

	"github.com/AbdoTarek2211/Cost-Management/internal/domain/cost"
	"github.com/shopspring/decimal"
)

// CreateCostRequest represents a request to record a business cost
type CreateCostRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category"`
}

func (r *CreateCostRequest) ToCost() *cost.Cost {
	return &cost.Cost{
		Description: r.Description,
		Amount:      r.Amount,
		Date:        time.Now().UTC(),
		Category:    r.Category,
	}
}

// CostResponse represents a cost response
type CostResponse struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
}

func NewCostResponse(c *cost.Cost) *CostResponse {
	return &CostResponse{
		ID:          c.ID,
		Description: c.Description,
		Amount:      c.Amount,
		Date:        c.Date,
		Category:    c.Category,
	}
}

// ListCostsResponse represents a list of costs
type ListCostsResponse struct {
	Items []*CostResponse `json:"items"`
	Total int             `json:"total"`
}
