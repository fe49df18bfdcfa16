package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/finmesh/collateral-backend/internal/domain"
)

// ResolveEligibility scans the rules in order and returns the eligibility flag
// and discount of the first rule covering the (account, asset) pair.
//
// The linear first-match scan is deliberate: rules may overlap, and upstream
// rule producers rely on ordering to express overrides, so the earliest rule
// in the sequence governs. If no rule matches, the pair is ineligible with a
// zero discount (default deny: unknown combinations never contribute).
func ResolveEligibility(rules []domain.EligibilityRule, accountID, assetID string) (bool, decimal.Decimal) {
	for i := range rules {
		if rules[i].Covers(accountID, assetID) {
			return rules[i].Eligible, rules[i].Discount
		}
	}

	return false, decimal.Zero
}
