// Package staticsrc provides in-memory implementations of the three external
// data sources, carrying the reference dataset. They stand in for the real
// position, eligibility, and price services in local runs and demos.
package staticsrc

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finmesh/collateral-backend/internal/domain"
)

// Positions is a PositionSource returning the reference holdings for E1 and
// E2 regardless of the requested account IDs.
type Positions struct{}

// NewPositions creates a new static Positions source
func NewPositions() *Positions {
	return &Positions{}
}

func (s *Positions) GetPositions(ctx context.Context, accountIDs []string) ([]domain.AccountPosition, error) {
	return []domain.AccountPosition{
		{
			AccountID: "E1",
			Positions: []domain.Position{
				{AssetID: "S1", Quantity: 100},
				{AssetID: "S3", Quantity: 100},
				{AssetID: "S4", Quantity: 100},
			},
		},
		{
			AccountID: "E2",
			Positions: []domain.Position{
				{AssetID: "S1", Quantity: 200},
				{AssetID: "S2", Quantity: 150},
				{AssetID: "S5", Quantity: 50},
			},
		},
	}, nil
}

// Eligibility is an EligibilitySource returning two grouped rules: S1-S3 are
// eligible at a 0.9 discount, S4-S5 are ineligible. Both rules cover exactly
// the accounts named in the request, matching the upstream mock's behavior.
type Eligibility struct{}

// NewEligibility creates a new static Eligibility source
func NewEligibility() *Eligibility {
	return &Eligibility{}
}

func (s *Eligibility) GetEligibility(ctx context.Context, accountIDs, assetIDs []string) ([]domain.EligibilityRule, error) {
	accounts := make([]string, len(accountIDs))
	copy(accounts, accountIDs)

	return []domain.EligibilityRule{
		{
			Eligible:   true,
			AssetIDs:   []string{"S1", "S2", "S3"},
			AccountIDs: accounts,
			Discount:   decimal.NewFromFloat(0.9),
		},
		{
			Eligible:   false,
			AssetIDs:   []string{"S4", "S5"},
			AccountIDs: accounts,
			Discount:   decimal.Zero,
		},
	}, nil
}

// Prices is a PriceSource returning the reference price list for S1-S5.
type Prices struct{}

// NewPrices creates a new static Prices source
func NewPrices() *Prices {
	return &Prices{}
}

func (s *Prices) GetPrices(ctx context.Context, assetIDs []string) ([]domain.AssetPrice, error) {
	return []domain.AssetPrice{
		{AssetID: "S1", Price: decimal.NewFromFloat(50.5)},
		{AssetID: "S2", Price: decimal.NewFromFloat(20.2)},
		{AssetID: "S3", Price: decimal.NewFromFloat(10.4)},
		{AssetID: "S4", Price: decimal.NewFromFloat(15.5)},
		{AssetID: "S5", Price: decimal.NewFromFloat(25.0)},
	}, nil
}
