package pricing

import (
	"testing"

	"coffee-subscription/internal/catalog"
	"coffee-subscription/internal/domain"

	"github.com/shopspring/decimal"
)

func eur(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustMachine(t *testing.T, c *catalog.Catalog, id string) domain.Machine {
	t.Helper()
	m, ok := c.Machine(id)
	if !ok {
		t.Fatalf("machine %s missing", id)
	}
	return m
}

func mustCoffee(t *testing.T, c *catalog.Catalog, id string) domain.CoffeeVariety {
	t.Helper()
	v, ok := c.Coffee(id)
	if !ok {
		t.Fatalf("coffee %s missing", id)
	}
	return v
}

func sampleSelection(t *testing.T) domain.Selection {
	t.Helper()
	c := catalog.Default()
	acc, _ := c.Accompaniment("accompaniment-1")
	cup, _ := c.Accessory("accessory-4")
	w4 := mustMachine(t, c, "JURA W4")
	return domain.Selection{
		Machines:       []domain.Machine{w4, w4},
		Coffees:        []domain.CoffeeVariety{mustCoffee(t, c, "coffee-2"), mustCoffee(t, c, "coffee-1"), mustCoffee(t, c, "coffee-2")},
		Accompaniments: []domain.Accompaniment{acc},
		Accessories:    []domain.Accessory{cup},
	}
}

func TestOneTimeTotal(t *testing.T) {
	got := OneTimeTotal(sampleSelection(t))
	if !got.Equal(eur("4174.38")) {
		t.Fatalf("expected 4174.38, got %s", got)
	}
}

func TestMonthlyTotalByDuration(t *testing.T) {
	sel := sampleSelection(t)
	tests := []struct {
		d    domain.ContractDuration
		want string
	}{
		{domain.Duration24, "356.78"},
		{domain.Duration36, "294.78"},
		{domain.Duration48, "256.78"},
	}
	for _, tt := range tests {
		if got := MonthlyTotal(sel, tt.d); !got.Equal(eur(tt.want)) {
			t.Fatalf("duration %d: expected %s, got %s", tt.d, tt.want, got)
		}
	}
}

func TestMonthlyFlatRateCoffeeCountsOnce(t *testing.T) {
	c := catalog.Default()
	special := mustCoffee(t, c, "coffee-2")
	sel := domain.Selection{Coffees: []domain.CoffeeVariety{special, special}}
	if got := MonthlyTotal(sel, domain.Duration36); !got.Equal(eur("21.60")) {
		t.Fatalf("expected 21.60 for two units, got %s", got)
	}
	if got := OneTimeTotal(sel); !got.Equal(eur("43.20")) {
		t.Fatalf("one-time total still counts every unit, got %s", got)
	}
}

func TestMonthlyRegularCoffeeScales(t *testing.T) {
	c := catalog.Default()
	regular := mustCoffee(t, c, "coffee-1")
	sel := domain.Selection{Coffees: []domain.CoffeeVariety{regular, regular, regular}}
	if got := MonthlyTotal(sel, domain.Duration24); !got.Equal(eur("62.40")) {
		t.Fatalf("expected 62.40, got %s", got)
	}
}

func TestEmptySelectionTotalsAreZero(t *testing.T) {
	var sel domain.Selection
	if !OneTimeTotal(sel).IsZero() || !MonthlyTotal(sel, domain.DefaultDuration).IsZero() {
		t.Fatalf("empty selection should cost nothing")
	}
	s := Summarize(sel, domain.DefaultDuration)
	if !s.Total.IsZero() || !s.MonthlyTotal.IsZero() || len(s.Machines.Lines) != 0 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestSavings(t *testing.T) {
	c := catalog.Default()
	w4 := mustMachine(t, c, "JURA W4")
	if got := Savings(w4, domain.Duration24, domain.Duration36); got != 22 {
		t.Fatalf("24->36 on 140/109: expected 22, got %d", got)
	}
	if got := Savings(w4, domain.Duration24, domain.Duration48); got != 36 {
		t.Fatalf("24->48 on 140/90: expected 36, got %d", got)
	}
	if got := Savings(w4, domain.Duration36, domain.Duration36); got != 0 {
		t.Fatalf("same duration: expected 0, got %d", got)
	}
	if got := Savings(domain.Machine{}, domain.Duration24, domain.Duration36); got != 0 {
		t.Fatalf("zero priced machine: expected 0, got %d", got)
	}
}

func TestSavingsNonNegativeForCatalog(t *testing.T) {
	for _, m := range catalog.Default().Machines {
		for i, from := range domain.Durations {
			for _, to := range domain.Durations[i:] {
				if s := Savings(m, from, to); s < 0 {
					t.Fatalf("%s: savings %d->%d negative (%d)", m.ID, from, to, s)
				}
			}
		}
	}
}

func TestSavingsHints(t *testing.T) {
	c := catalog.Default()
	hint, ok := SavingsHints(domain.Selection{}, c)
	if !ok || hint.MachineID != catalog.DefaultSavingsMachineID {
		t.Fatalf("expected default reference machine, got %+v", hint)
	}
	if hint.From24To36 != 27 || hint.From24To48 != 40 {
		t.Fatalf("unexpected GIGA X3 savings %+v", hint)
	}

	hint, ok = SavingsHints(sampleSelection(t), c)
	if !ok || hint.MachineID != "JURA W4" || hint.From24To36 != 22 {
		t.Fatalf("expected first selected machine, got %+v", hint)
	}

	if _, ok := SavingsHints(domain.Selection{}, &catalog.Catalog{}); ok {
		t.Fatalf("no machine available should give no hint")
	}
}

func TestGroupBy(t *testing.T) {
	sel := sampleSelection(t)
	groups := GroupCoffees(sel.Coffees)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Item.ID != "coffee-2" || groups[0].Quantity != 2 || groups[1].Item.ID != "coffee-1" || groups[1].Quantity != 1 {
		t.Fatalf("unexpected groups %+v", groups)
	}
	if q := Quantity(sel.Coffees, func(c domain.CoffeeVariety) string { return c.ID }, "coffee-2"); q != 2 {
		t.Fatalf("expected quantity 2, got %d", q)
	}
}

func TestSummarizeMatchesTotals(t *testing.T) {
	sel := sampleSelection(t)
	for _, d := range domain.Durations {
		s := Summarize(sel, d)
		if !s.Total.Equal(OneTimeTotal(sel)) {
			t.Fatalf("duration %d: summary total %s != %s", d, s.Total, OneTimeTotal(sel))
		}
		if !s.MonthlyTotal.Equal(MonthlyTotal(sel, d)) {
			t.Fatalf("duration %d: summary monthly %s != %s", d, s.MonthlyTotal, MonthlyTotal(sel, d))
		}
	}

	s := Summarize(sel, domain.Duration36)
	if len(s.Machines.Lines) != 1 || s.Machines.Lines[0].Quantity != 2 || !s.Machines.MonthlyTotal.Equal(eur("218")) {
		t.Fatalf("unexpected machines %+v", s.Machines)
	}
	if !s.Coffees.MonthlyTotal.Equal(eur("42.40")) {
		t.Fatalf("expected coffee monthly 21.60+20.80, got %s", s.Coffees.MonthlyTotal)
	}
	if s.CoffeeKilograms != 3 || s.CoffeeCups != 360 {
		t.Fatalf("unexpected coffee volume %d kg / %d cups", s.CoffeeKilograms, s.CoffeeCups)
	}
}

func TestPricePerCup(t *testing.T) {
	c := catalog.Default()
	if got := mustCoffee(t, c, "coffee-2").PricePerCup(); !got.Equal(eur("0.18")) {
		t.Fatalf("expected pinned 0.18, got %s", got)
	}
	if got := mustCoffee(t, c, "coffee-5").PricePerCup(); !got.Equal(eur("0.25")) {
		t.Fatalf("expected 30/120 = 0.25, got %s", got)
	}
}
