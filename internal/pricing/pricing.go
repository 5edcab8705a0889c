// Package pricing derives one-time and monthly totals from a selection.
package pricing

import (
	"coffee-subscription/internal/catalog"
	"coffee-subscription/internal/domain"

	"github.com/shopspring/decimal"
)

// OneTimeTotal sums the catalog price of every selected unit.
func OneTimeTotal(sel domain.Selection) decimal.Decimal {
	total := decimal.Zero
	for _, m := range sel.Machines {
		total = total.Add(m.Price)
	}
	for _, c := range sel.Coffees {
		total = total.Add(c.Price)
	}
	for _, a := range sel.Accompaniments {
		total = total.Add(a.Price)
	}
	for _, a := range sel.Accessories {
		total = total.Add(a.Price)
	}
	return total
}

// MonthlyTotal sums the recurring price of the selection for a contract
// duration. Coffee varieties with a flat monthly override contribute it
// once, on their first occurrence, whatever the number of units.
func MonthlyTotal(sel domain.Selection, d domain.ContractDuration) decimal.Decimal {
	total := decimal.Zero
	for _, m := range sel.Machines {
		total = total.Add(m.MonthlyPrice(d))
	}
	total = total.Add(coffeeMonthly(sel.Coffees))
	for _, a := range sel.Accompaniments {
		total = total.Add(a.Price)
	}
	for _, a := range sel.Accessories {
		total = total.Add(a.Price)
	}
	return total
}

func coffeeMonthly(coffees []domain.CoffeeVariety) decimal.Decimal {
	total := decimal.Zero
	flatSeen := map[string]bool{}
	for _, c := range coffees {
		if c.FlatMonthlyOverride == nil {
			total = total.Add(c.Price)
			continue
		}
		if flatSeen[c.ID] {
			continue
		}
		flatSeen[c.ID] = true
		total = total.Add(*c.FlatMonthlyOverride)
	}
	return total
}

// Savings returns the rounded percentage saved on the machine's monthly
// rate when moving from one contract duration to another.
func Savings(m domain.Machine, from, to domain.ContractDuration) int {
	fromPrice := m.MonthlyPrice(from)
	if fromPrice.IsZero() {
		return 0
	}
	pct := fromPrice.Sub(m.MonthlyPrice(to)).Div(fromPrice).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}

// SavingsHint is the duration incentive shown next to the machine list.
type SavingsHint struct {
	MachineID   string `json:"machineId"`
	MachineName string `json:"machineName"`
	From24To36  int    `json:"from24To36"`
	From24To48  int    `json:"from24To48"`
}

// SavingsHints uses the first selected machine, or the catalog's default
// reference machine when nothing is selected.
func SavingsHints(sel domain.Selection, cat *catalog.Catalog) (SavingsHint, bool) {
	var ref domain.Machine
	switch {
	case len(sel.Machines) > 0:
		ref = sel.Machines[0]
	case cat != nil:
		m, ok := cat.SavingsMachine()
		if !ok {
			return SavingsHint{}, false
		}
		ref = m
	default:
		return SavingsHint{}, false
	}
	return SavingsHint{
		MachineID:   ref.ID,
		MachineName: ref.Name,
		From24To36:  Savings(ref, domain.Duration24, domain.Duration36),
		From24To48:  Savings(ref, domain.Duration24, domain.Duration48),
	}, true
}
