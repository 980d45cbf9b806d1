// Package allocation computes per-owner totals for a check, distributing
// each location's flat tax and tip pools proportionally over the location's
// line-item spend.
package allocation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/splitit-app/splitit_backend/internal/apperrors"
	"github.com/splitit-app/splitit_backend/internal/core/domain"
)

func poolAmount(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

// GroupByOwner returns the amount each owner is responsible for, in cents.
//
// For every location the tax and tip pools are converted to multipliers
// (pool / location line-item total), and each line item contributes
// round((1 + tipMultiplier + taxMultiplier) * amount) to its owners, using
// banker's rounding. Contributions are rounded per item, so the grand total
// can drift from locationTotal + tax + tip by up to one cent per line item.
//
// A line item with several owners has its rounded contribution divided
// evenly; remainder cents go to the earliest listed owners. Items without
// owners accrue to the empty owner name.
//
// A location whose line items sum to zero cannot anchor a proportional
// distribution: if it carries a tax or tip pool the check is rejected with
// a validation error. With no pools its multipliers are simply zero.
func GroupByOwner(check *domain.Check) (map[string]int64, error) {
	one := decimal.NewFromInt(1)

	factors := make(map[string]decimal.Decimal, len(check.Locations))
	for i := range check.Locations {
		location := &check.Locations[i]

		var locationTotal int64
		for j := range check.LineItems {
			if check.LineItems[j].LocationID == location.LocationID {
				locationTotal += check.LineItems[j].Amount()
			}
		}

		tax := poolAmount(location.TaxInCents)
		tip := poolAmount(location.TipInCents)

		if locationTotal == 0 {
			if tax != 0 || tip != 0 {
				return nil, fmt.Errorf("location %q has tax or tip but no line item spend: %w",
					location.Name, apperrors.ErrValidation)
			}
			factors[location.LocationID] = one
			continue
		}

		total := decimal.NewFromInt(locationTotal)
		tipMultiplier := decimal.NewFromInt(tip).Div(total)
		taxMultiplier := decimal.NewFromInt(tax).Div(total)
		factors[location.LocationID] = one.Add(tipMultiplier).Add(taxMultiplier)
	}

	byOwner := make(map[string]int64)
	for i := range check.LineItems {
		lineItem := &check.LineItems[i]

		factor, ok := factors[lineItem.LocationID]
		if !ok {
			return nil, fmt.Errorf("line item %q references unknown location %s: %w",
				lineItem.Name, lineItem.LocationID, apperrors.ErrValidation)
		}

		contribution := factor.
			Mul(decimal.NewFromInt(lineItem.Amount())).
			RoundBank(0).
			IntPart()

		if len(lineItem.Owners) == 0 {
			byOwner[""] += contribution
			continue
		}

		share := contribution / int64(len(lineItem.Owners))
		remainder := contribution % int64(len(lineItem.Owners))
		for n, owner := range lineItem.Owners {
			byOwner[owner] += share
			if int64(n) < remainder {
				byOwner[owner]++
			}
		}
	}

	return byOwner, nil
}
