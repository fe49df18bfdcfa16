package domain

import "context"

// PositionSource defines the interface for retrieving account holdings
type PositionSource interface {
	// GetPositions returns the full holdings of each recognized account.
	// Accounts unknown to the source may be omitted from the result;
	// the order of returned accounts is the source's choice.
	GetPositions(ctx context.Context, accountIDs []string) ([]AccountPosition, error)
}

// EligibilitySource defines the interface for retrieving eligibility rules
type EligibilitySource interface {
	// GetEligibility returns the grouped eligibility rules covering any
	// subset of the requested accounts and assets. Rules may reference
	// identifiers outside the request. The returned order is significant:
	// when rules overlap, the earlier rule wins.
	GetEligibility(ctx context.Context, accountIDs, assetIDs []string) ([]EligibilityRule, error)
}

// PriceSource defines the interface for retrieving asset market prices
type PriceSource interface {
	// GetPrices returns zero or more price entries for the requested assets.
	// Omitted assets are treated as unpriced by the caller.
	GetPrices(ctx context.Context, assetIDs []string) ([]AssetPrice, error)
}
