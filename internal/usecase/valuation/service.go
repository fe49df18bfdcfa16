package valuation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finmesh/collateral-backend/internal/domain"
)

// Service computes per-account collateral values by joining positions,
// eligibility rules, and market prices from three external sources.
type Service struct {
	Positions   domain.PositionSource
	Eligibility domain.EligibilitySource
	Prices      domain.PriceSource
}

// NewService creates a new valuation Service instance
func NewService(positions domain.PositionSource, eligibility domain.EligibilitySource, prices domain.PriceSource) *Service {
	return &Service{
		Positions:   positions,
		Eligibility: eligibility,
		Prices:      prices,
	}
}

// CalculateCollateral computes the total collateral value for each account.
// Logic:
//  1. Fetch positions for the requested accounts
//  2. Collect the distinct asset IDs referenced across all positions
//  3. Fetch eligibility rules and prices for those accounts/assets
//  4. Value each position (quantity × price × discount for eligible
//     positions, zero otherwise) and accumulate per account
//  5. Round each account total to two decimal places, half up
//
// Missing reference data degrades gracefully: an unpriced asset or an
// uncovered (account, asset) pair contributes zero rather than failing the
// calculation. Source errors propagate and fail the whole request.
// Output order follows the order of accounts returned by the position source.
func (s *Service) CalculateCollateral(ctx context.Context, accountIDs []string) ([]domain.CollateralResult, error) {
	accountPositions, err := s.Positions.GetPositions(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch positions: %w", err)
	}

	assetIDs := collectAssetIDs(accountPositions)

	rules, err := s.Eligibility.GetEligibility(ctx, accountIDs, assetIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch eligibility rules: %w", err)
	}

	prices, err := s.Prices.GetPrices(ctx, assetIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices: %w", err)
	}

	priceIndex := BuildPriceIndex(prices)

	results := make([]domain.CollateralResult, 0, len(accountPositions))
	for _, ap := range accountPositions {
		total := decimal.Zero

		for _, pos := range ap.Positions {
			price, ok := priceIndex[pos.AssetID]
			if !ok {
				// Unpriced asset contributes zero
				price = decimal.Zero
			}

			eligible, discount := ResolveEligibility(rules, ap.AccountID, pos.AssetID)
			total = total.Add(ValuePosition(pos.Quantity, price, eligible, discount))
		}

		results = append(results, domain.CollateralResult{
			AccountID:       ap.AccountID,
			CollateralValue: total.Round(2),
		})
	}

	return results, nil
}

// collectAssetIDs returns the distinct asset identifiers referenced across
// all positions, in first-seen order.
func collectAssetIDs(accountPositions []domain.AccountPosition) []string {
	seen := make(map[string]struct{})
	assetIDs := make([]string, 0)

	for _, ap := range accountPositions {
		for _, pos := range ap.Positions {
			if _, ok := seen[pos.AssetID]; ok {
				continue
			}
			seen[pos.AssetID] = struct{}{}
			assetIDs = append(assetIDs, pos.AssetID)
		}
	}

	return assetIDs
}
