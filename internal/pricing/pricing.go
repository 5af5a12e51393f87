// Package pricing computes booking totals from a venue's hourly rate.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/HallBooker/internal/domain"
)

const moneyScale = 2

// Engine applies the fee and tax policy on top of the base rate. The rates
// come from configuration so a policy change never touches call sites.
type Engine struct {
	serviceFeeRate decimal.Decimal
	taxRate        decimal.Decimal
}

func NewEngine(serviceFeeRate, taxRate decimal.Decimal) *Engine {
	return &Engine{
		serviceFeeRate: serviceFeeRate,
		taxRate:        taxRate,
	}
}

// Breakdown holds unrounded components; rounding happens only at the
// persistence/display boundary via Rounded.
type Breakdown struct {
	Base       decimal.Decimal
	ServiceFee decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
}

// Rounded returns the breakdown with every component rounded half-up to two
// decimal places.
func (b Breakdown) Rounded() Breakdown {
	return Breakdown{
		Base:       b.Base.Round(moneyScale),
		ServiceFee: b.ServiceFee.Round(moneyScale),
		Tax:        b.Tax.Round(moneyScale),
		Total:      b.Total.Round(moneyScale),
	}
}

// Quote prices a validated time range at the given hourly rate.
func (e *Engine) Quote(rate decimal.Decimal, r domain.TimeRange) (Breakdown, error) {
	if rate.IsNegative() {
		return Breakdown{}, fmt.Errorf("%w: rate must be non-negative, got %s",
			domain.ErrInvalidRate, rate)
	}

	base := rate.Mul(r.Hours())
	fee := base.Mul(e.serviceFeeRate)
	tax := base.Mul(e.taxRate)

	return Breakdown{
		Base:       base,
		ServiceFee: fee,
		Tax:        tax,
		Total:      base.Add(fee).Add(tax),
	}, nil
}
