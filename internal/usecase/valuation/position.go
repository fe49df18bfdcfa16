package valuation

import (
	"github.com/shopspring/decimal"
)

// ValuePosition computes the collateral contribution of a single position:
// quantity × price × discount, carried out entirely in decimal arithmetic so
// no binary floating-point error enters the multiplication chain.
//
// Ineligibility dominates: when eligible is false the result is exactly zero
// regardless of price, quantity, or discount. No validation is performed
// here; negative inputs simply propagate their sign.
func ValuePosition(quantity int64, price decimal.Decimal, eligible bool, discount decimal.Decimal) decimal.Decimal {
	if !eligible {
		return decimal.Zero
	}

	return decimal.NewFromInt(quantity).Mul(price).Mul(discount)
}
