package staticsrc

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPositions_ReferenceDataset(t *testing.T) {
	ctx := context.Background()

	positions, err := NewPositions().GetPositions(ctx, []string{"E1", "E2"})

	assert.NoError(t, err)
	assert.Len(t, positions, 2)
	assert.Equal(t, "E1", positions[0].AccountID)
	assert.Len(t, positions[0].Positions, 3)
	assert.Equal(t, "E2", positions[1].AccountID)
	assert.Len(t, positions[1].Positions, 3)

	for _, ap := range positions {
		assert.NoError(t, ap.Validate())
	}
}

func TestEligibility_RulesCoverRequestedAccounts(t *testing.T) {
	ctx := context.Background()

	rules, err := NewEligibility().GetEligibility(ctx, []string{"E1", "E7"}, []string{"S1"})

	assert.NoError(t, err)
	assert.Len(t, rules, 2)

	// First rule grants S1-S3 at 0.9 for exactly the requested accounts
	assert.True(t, rules[0].Eligible)
	assert.Equal(t, []string{"E1", "E7"}, rules[0].AccountIDs)
	assert.True(t, rules[0].Discount.Equal(decimal.NewFromFloat(0.9)))
	assert.True(t, rules[0].Covers("E7", "S2"))

	// Second rule denies S4-S5
	assert.False(t, rules[1].Eligible)
	assert.True(t, rules[1].Covers("E1", "S4"))

	for _, r := range rules {
		assert.NoError(t, r.Validate())
	}
}

func TestPrices_ReferenceDataset(t *testing.T) {
	ctx := context.Background()

	prices, err := NewPrices().GetPrices(ctx, []string{"S1"})

	assert.NoError(t, err)
	assert.Len(t, prices, 5)
	assert.Equal(t, "S1", prices[0].AssetID)
	assert.True(t, prices[0].Price.Equal(decimal.NewFromFloat(50.5)))

	for _, p := range prices {
		assert.NoError(t, p.Validate())
	}
}
