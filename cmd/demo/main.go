// Command demo runs the reference collateral calculation against the static
// data sources and prints the results with a per-position breakdown.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/finmesh/collateral-backend/internal/adapter/source/staticsrc"
	"github.com/finmesh/collateral-backend/internal/domain"
	"github.com/finmesh/collateral-backend/internal/usecase/valuation"
)

func main() {
	ctx := context.Background()

	positions := staticsrc.NewPositions()
	eligibility := staticsrc.NewEligibility()
	prices := staticsrc.NewPrices()
	service := valuation.NewService(positions, eligibility, prices)

	accountIDs := []string{"E1", "E2"}

	fmt.Println("=== Collateral Calculation Service Demo ===")
	fmt.Println()
	fmt.Printf("Input Account IDs: %v\n\n", accountIDs)

	results, err := service.CalculateCollateral(ctx, accountIDs)
	if err != nil {
		log.Fatalf("Calculation failed: %v", err)
	}

	fmt.Println("Account ID   Collateral Value")
	fmt.Println("----------   ----------------")
	for _, r := range results {
		fmt.Printf("%-12s %16s\n", r.AccountID, display(r.CollateralValue))
	}

	fmt.Println()
	fmt.Println("=== Calculation Breakdown ===")
	printBreakdown(ctx, service)
}

// printBreakdown re-fetches the inputs and values each position individually,
// showing how every account total is assembled.
func printBreakdown(ctx context.Context, service *valuation.Service) {
	accountIDs := []string{"E1", "E2"}

	accountPositions, err := service.Positions.GetPositions(ctx, accountIDs)
	if err != nil {
		log.Fatalf("Failed to fetch positions: %v", err)
	}

	assetIDs := distinctAssets(accountPositions)

	rules, err := service.Eligibility.GetEligibility(ctx, accountIDs, assetIDs)
	if err != nil {
		log.Fatalf("Failed to fetch eligibility rules: %v", err)
	}

	priceList, err := service.Prices.GetPrices(ctx, assetIDs)
	if err != nil {
		log.Fatalf("Failed to fetch prices: %v", err)
	}

	priceIndex := valuation.BuildPriceIndex(priceList)

	for _, ap := range accountPositions {
		fmt.Printf("\nAccount %s:\n", ap.AccountID)
		for _, pos := range ap.Positions {
			price := priceIndex[pos.AssetID]
			eligible, discount := valuation.ResolveEligibility(rules, ap.AccountID, pos.AssetID)
			value := valuation.ValuePosition(pos.Quantity, price, eligible, discount)

			status := "eligible"
			if !eligible {
				status = "ineligible"
			}
			fmt.Printf("  - %s: %d units x %s x %s = %s (%s)\n",
				pos.AssetID, pos.Quantity, display(price), discount.StringFixed(2),
				display(value.Round(2)), status)
		}
	}
}

func distinctAssets(accountPositions []domain.AccountPosition) []string {
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

// display renders a two-decimal amount as a USD currency string.
func display(amount decimal.Decimal) string {
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}
