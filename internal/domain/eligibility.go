package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// EligibilityRule is a grouped eligibility statement: for every (account, asset)
// pair where the account is in AccountIDs and the asset is in AssetIDs, the rule
// declares whether the asset counts as collateral and at what discount (haircut).
//
// Rules are neither required to be disjoint nor exhaustive. When two rules cover
// the same pair, the rule that appears earlier in the sequence returned by the
// eligibility source governs; that ordering is the source's contract.
type EligibilityRule struct {
	Eligible   bool
	AssetIDs   []string
	AccountIDs []string
	Discount   decimal.Decimal // haircut multiplier, expected in [0, 1]
}

// Covers reports whether this rule applies to the given (account, asset) pair.
func (r *EligibilityRule) Covers(accountID, assetID string) bool {
	return containsID(r.AccountIDs, accountID) && containsID(r.AssetIDs, assetID)
}

// Validate ensures the eligibility rule adheres to domain rules
// Returns an error if validation fails
func (r *EligibilityRule) Validate() error {
	if len(r.AssetIDs) == 0 {
		return errors.New("eligibility rule must cover at least one asset")
	}

	if len(r.AccountIDs) == 0 {
		return errors.New("eligibility rule must cover at least one account")
	}

	// Validate discount is between 0 and 1
	if r.Discount.LessThan(decimal.Zero) || r.Discount.GreaterThan(decimal.NewFromInt(1)) {
		return errors.New("eligibility rule discount must be between 0 and 1")
	}

	return nil
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
