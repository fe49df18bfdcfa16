package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEligibilityRule_Covers(t *testing.T) {
	rule := EligibilityRule{
		Eligible:   true,
		AssetIDs:   []string{"S1", "S2", "S3"},
		AccountIDs: []string{"E1", "E2"},
		Discount:   decimal.NewFromFloat(0.9),
	}

	tests := []struct {
		name      string
		accountID string
		assetID   string
		want      bool
	}{
		{"Both account and asset covered", "E1", "S1", true},
		{"Second account, last asset", "E2", "S3", true},
		{"Account covered, asset not", "E1", "S4", false},
		{"Asset covered, account not", "E3", "S1", false},
		{"Neither covered", "E3", "S4", false},
		{"Empty identifiers", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Covers(tt.accountID, tt.assetID))
		})
	}
}

func TestEligibilityRule_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rule    EligibilityRule
		wantErr bool
		errMsg  string
	}{
		{
			name: "Valid eligible rule should pass",
			rule: EligibilityRule{
				Eligible:   true,
				AssetIDs:   []string{"S1"},
				AccountIDs: []string{"E1"},
				Discount:   decimal.NewFromFloat(0.9),
			},
			wantErr: false,
		},
		{
			name: "Ineligible rule with zero discount should pass",
			rule: EligibilityRule{
				Eligible:   false,
				AssetIDs:   []string{"S4", "S5"},
				AccountIDs: []string{"E1", "E2"},
				Discount:   decimal.Zero,
			},
			wantErr: false,
		},
		{
			name: "Discount of exactly 1 should pass",
			rule: EligibilityRule{
				Eligible:   true,
				AssetIDs:   []string{"S1"},
				AccountIDs: []string{"E1"},
				Discount:   decimal.NewFromInt(1),
			},
			wantErr: false,
		},
		{
			name: "No assets should fail",
			rule: EligibilityRule{
				Eligible:   true,
				AssetIDs:   []string{},
				AccountIDs: []string{"E1"},
				Discount:   decimal.NewFromFloat(0.9),
			},
			wantErr: true,
			errMsg:  "eligibility rule must cover at least one asset",
		},
		{
			name: "No accounts should fail",
			rule: EligibilityRule{
				Eligible:   true,
				AssetIDs:   []string{"S1"},
				AccountIDs: nil,
				Discount:   decimal.NewFromFloat(0.9),
			},
			wantErr: true,
			errMsg:  "eligibility rule must cover at least one account",
		},
		{
			name: "Discount above 1 should fail",
			rule: EligibilityRule{
				Eligible:   true,
				AssetIDs:   []string{"S1"},
				AccountIDs: []string{"E1"},
				Discount:   decimal.NewFromFloat(1.1),
			},
			wantErr: true,
			errMsg:  "eligibility rule discount must be between 0 and 1",
		},
		{
			name: "Negative discount should fail",
			rule: EligibilityRule{
				Eligible:   true,
				AssetIDs:   []string{"S1"},
				AccountIDs: []string{"E1"},
				Discount:   decimal.NewFromFloat(-0.1),
			},
			wantErr: true,
			errMsg:  "eligibility rule discount must be between 0 and 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssetPrice_Validate(t *testing.T) {
	valid := AssetPrice{AssetID: "S1", Price: decimal.NewFromFloat(50.5)}
	assert.NoError(t, valid.Validate())

	missingID := AssetPrice{AssetID: "", Price: decimal.NewFromFloat(50.5)}
	assert.Error(t, missingID.Validate())

	negative := AssetPrice{AssetID: "S1", Price: decimal.NewFromFloat(-1)}
	assert.Error(t, negative.Validate())
}
