package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/finmesh/collateral-backend/internal/domain"
)

// BuildPriceIndex converts a list of asset prices into a lookup map.
// Duplicate entries for the same asset keep the first occurrence; later
// duplicates are silently discarded. An empty input yields an empty map.
func BuildPriceIndex(prices []domain.AssetPrice) map[string]decimal.Decimal {
	index := make(map[string]decimal.Decimal, len(prices))

	for _, p := range prices {
		if _, exists := index[p.AssetID]; exists {
			continue
		}
		index[p.AssetID] = p.Price
	}

	return index
}
