package httpapi

import (
	"github.com/finmesh/collateral-backend/internal/domain"
)

// Wire types for the JSON API. Money fields are exposed as JSON numbers;
// values are already rounded by the core before they reach this layer, so
// the float64 conversion is presentation only.

type positionDTO struct {
	AssetID  string `json:"assetId"`
	Quantity int64  `json:"quantity"`
}

type accountPositionDTO struct {
	AccountID string        `json:"accountId"`
	Positions []positionDTO `json:"positions"`
}

type eligibilityRuleDTO struct {
	Eligible   bool     `json:"eligible"`
	AssetIDs   []string `json:"assetIDs"`
	AccountIDs []string `json:"accountIDs"`
	Discount   float64  `json:"discount"`
}

type assetPriceDTO struct {
	AssetID string  `json:"assetId"`
	Price   float64 `json:"price"`
}

type collateralResultDTO struct {
	AccountID       string  `json:"accountId"`
	CollateralValue float64 `json:"collateralValue"`
}

// eligibilityRequest is the body of the mock eligibility endpoint
type eligibilityRequest struct {
	AccountIDs []string `json:"accountIds"`
	AssetIDs   []string `json:"assetIds"`
}

func toAccountPositionDTOs(accountPositions []domain.AccountPosition) []accountPositionDTO {
	dtos := make([]accountPositionDTO, 0, len(accountPositions))
	for _, ap := range accountPositions {
		positions := make([]positionDTO, 0, len(ap.Positions))
		for _, p := range ap.Positions {
			positions = append(positions, positionDTO{AssetID: p.AssetID, Quantity: p.Quantity})
		}
		dtos = append(dtos, accountPositionDTO{AccountID: ap.AccountID, Positions: positions})
	}
	return dtos
}

func toEligibilityRuleDTOs(rules []domain.EligibilityRule) []eligibilityRuleDTO {
	dtos := make([]eligibilityRuleDTO, 0, len(rules))
	for _, r := range rules {
		dtos = append(dtos, eligibilityRuleDTO{
			Eligible:   r.Eligible,
			AssetIDs:   r.AssetIDs,
			AccountIDs: r.AccountIDs,
			Discount:   r.Discount.InexactFloat64(),
		})
	}
	return dtos
}

func toAssetPriceDTOs(prices []domain.AssetPrice) []assetPriceDTO {
	dtos := make([]assetPriceDTO, 0, len(prices))
	for _, p := range prices {
		dtos = append(dtos, assetPriceDTO{AssetID: p.AssetID, Price: p.Price.InexactFloat64()})
	}
	return dtos
}

func toCollateralResultDTOs(results []domain.CollateralResult) []collateralResultDTO {
	dtos := make([]collateralResultDTO, 0, len(results))
	for _, r := range results {
		dtos = append(dtos, collateralResultDTO{
			AccountID:       r.AccountID,
			CollateralValue: r.CollateralValue.InexactFloat64(),
		})
	}
	return dtos
}
