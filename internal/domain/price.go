package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// AssetPrice represents the current market price of one unit of an asset.
// Prices are assumed to be quoted in a single consistent currency.
type AssetPrice struct {
	AssetID string
	Price   decimal.Decimal
}

// Validate ensures the asset price adheres to domain rules
// Returns an error if validation fails
func (p *AssetPrice) Validate() error {
	if p.AssetID == "" {
		return errors.New("asset ID cannot be empty")
	}

	if p.Price.LessThan(decimal.Zero) {
		return errors.New("asset price cannot be negative")
	}

	return nil
}
