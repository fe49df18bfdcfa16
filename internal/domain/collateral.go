package domain

import "github.com/shopspring/decimal"

// CollateralResult is the outcome of a collateral valuation for one account.
// CollateralValue is the sum of eligible, discounted position values, rounded
// to two decimal places, and is therefore always non-negative for well-formed
// input.
type CollateralResult struct {
	AccountID       string
	CollateralValue decimal.Decimal
}
