package cost

import (
	"strings"
	"time"

	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
	"github.com/shopspring/decimal"
)

// Cost is a single business expense entry. Costs are immutable once
// recorded; the store assigns the ID on creation.
type Cost struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
}

func (c *Cost) Validate() error {
	if strings.TrimSpace(c.Description) == "" {
		return ierr.NewError("description is required").
			WithHint("Cost description is required").
			Mark(ierr.ErrValidation)
	}
	if c.Amount.IsNegative() {
		return ierr.NewError("amount must be non negative").
			WithHint("Cost amount must be non negative").
			WithReportableDetails(map[string]any{
				"amount": c.Amount,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
