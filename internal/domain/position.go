package domain

import "errors"

// Position represents a holding of a single asset within an account.
// Quantity counts whole units; fractional holdings are not supported.
type Position struct {
	AssetID  string
	Quantity int64
}

// AccountPosition groups all positions held by one account.
// An empty Positions slice means the account holds nothing.
type AccountPosition struct {
	AccountID string
	Positions []Position
}

// Validate ensures the account position adheres to domain rules
// Returns an error if validation fails
func (ap *AccountPosition) Validate() error {
	if ap.AccountID == "" {
		return errors.New("account ID cannot be empty")
	}

	for _, p := range ap.Positions {
		if p.AssetID == "" {
			return errors.New("position asset ID cannot be empty")
		}

		// Zero is a legal quantity (contributes zero value); negative is not
		if p.Quantity < 0 {
			return errors.New("position quantity cannot be negative")
		}
	}

	return nil
}
