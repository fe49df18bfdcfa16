package valuation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValuePosition_Eligible(t *testing.T) {
	// 100 × 50.5 × 0.9 = 4545 exactly
	value := ValuePosition(100, decimal.NewFromFloat(50.5), true, decimal.NewFromFloat(0.9))

	assert.True(t, value.Equal(decimal.NewFromInt(4545)), "expected 4545, got %s", value)
}

func TestValuePosition_IneligibilityDominates(t *testing.T) {
	// Even with a price and a nonzero discount, ineligible yields exactly zero
	value := ValuePosition(1000, decimal.NewFromFloat(999.99), false, decimal.NewFromFloat(0.95))

	assert.True(t, value.IsZero())
}

func TestValuePosition_ZeroQuantity(t *testing.T) {
	value := ValuePosition(0, decimal.NewFromFloat(50.5), true, decimal.NewFromFloat(0.9))

	assert.True(t, value.IsZero())
}

func TestValuePosition_ZeroPrice(t *testing.T) {
	value := ValuePosition(100, decimal.Zero, true, decimal.NewFromInt(1))

	assert.True(t, value.IsZero())
}

func TestValuePosition_ExactDecimalArithmetic(t *testing.T) {
	// 3 × 0.1 must be exactly 0.3, which float64 cannot represent
	value := ValuePosition(3, decimal.NewFromFloat(0.1), true, decimal.NewFromInt(1))

	assert.True(t, value.Equal(decimal.NewFromFloat(0.3)), "expected exactly 0.3, got %s", value)
}

func TestValuePosition_NegativeInputsPropagate(t *testing.T) {
	// No validation here: the sign simply flows through the arithmetic
	value := ValuePosition(-10, decimal.NewFromInt(5), true, decimal.NewFromInt(1))

	assert.True(t, value.Equal(decimal.NewFromInt(-50)))
}
