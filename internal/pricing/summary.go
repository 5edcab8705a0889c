package pricing

import (
	"coffee-subscription/internal/domain"

	"github.com/shopspring/decimal"
)

// Line is a grouped selection entry with its prices.
type Line struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	Total            decimal.Decimal `json:"total"`
	MonthlyUnitPrice decimal.Decimal `json:"monthlyUnitPrice"`
	MonthlyTotal     decimal.Decimal `json:"monthlyTotal"`
}

type CategoryTotals struct {
	Lines        []Line          `json:"lines"`
	Total        decimal.Decimal `json:"total"`
	MonthlyTotal decimal.Decimal `json:"monthlyTotal"`
}

func (c *CategoryTotals) add(l Line) {
	c.Lines = append(c.Lines, l)
	c.Total = c.Total.Add(l.Total)
	c.MonthlyTotal = c.MonthlyTotal.Add(l.MonthlyTotal)
}

// Summary is the snapshot handed to quote rendering and dispatch.
type Summary struct {
	ContractDuration domain.ContractDuration `json:"contractDuration"`
	Machines         CategoryTotals          `json:"machines"`
	Coffees          CategoryTotals          `json:"coffees"`
	Accompaniments   CategoryTotals          `json:"accompaniments"`
	Accessories      CategoryTotals          `json:"accessories"`
	Total            decimal.Decimal         `json:"total"`
	MonthlyTotal     decimal.Decimal         `json:"monthlyTotal"`
	CoffeeKilograms  int                     `json:"coffeeKilograms"`
	CoffeeCups       int                     `json:"coffeeCups"`
}

func newCategory() CategoryTotals {
	return CategoryTotals{Lines: []Line{}, Total: decimal.Zero, MonthlyTotal: decimal.Zero}
}

func line(id, name string, qty int, unit, monthlyUnit decimal.Decimal) Line {
	q := decimal.NewFromInt(int64(qty))
	return Line{
		ID:               id,
		Name:             name,
		Quantity:         qty,
		UnitPrice:        unit,
		Total:            unit.Mul(q),
		MonthlyUnitPrice: monthlyUnit,
		MonthlyTotal:     monthlyUnit.Mul(q),
	}
}

// Summarize groups the selection and computes per-category and grand
// totals. Category monthly totals add up to MonthlyTotal.
func Summarize(sel domain.Selection, d domain.ContractDuration) Summary {
	s := Summary{
		ContractDuration: d,
		Machines:         newCategory(),
		Coffees:          newCategory(),
		Accompaniments:   newCategory(),
		Accessories:      newCategory(),
	}

	for _, g := range GroupMachines(sel.Machines) {
		s.Machines.add(line(g.Item.ID, g.Item.Name, g.Quantity, g.Item.Price, g.Item.MonthlyPrice(d)))
	}
	for _, g := range GroupCoffees(sel.Coffees) {
		l := line(g.Item.ID, g.Item.Name, g.Quantity, g.Item.Price, g.Item.Price)
		if flat := g.Item.FlatMonthlyOverride; flat != nil {
			l.MonthlyUnitPrice = *flat
			l.MonthlyTotal = *flat
		}
		s.Coffees.add(l)
		s.CoffeeKilograms += g.Quantity
	}
	for _, g := range GroupAccompaniments(sel.Accompaniments) {
		s.Accompaniments.add(line(g.Item.ID, g.Item.Name, g.Quantity, g.Item.Price, g.Item.Price))
	}
	for _, g := range GroupAccessories(sel.Accessories) {
		s.Accessories.add(line(g.Item.ID, g.Item.Name, g.Quantity, g.Item.Price, g.Item.Price))
	}

	s.CoffeeCups = s.CoffeeKilograms * domain.CupsPerKilogram
	s.Total = s.Machines.Total.Add(s.Coffees.Total).Add(s.Accompaniments.Total).Add(s.Accessories.Total)
	s.MonthlyTotal = s.Machines.MonthlyTotal.Add(s.Coffees.MonthlyTotal).Add(s.Accompaniments.MonthlyTotal).Add(s.Accessories.MonthlyTotal)
	return s
}
