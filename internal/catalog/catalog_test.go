package catalog

import (
	"strings"
	"testing"

	"coffee-subscription/internal/domain"

	"github.com/shopspring/decimal"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	if w := c.TierWarnings(); len(w) != 0 {
		t.Fatalf("unexpected tier warnings: %v", w)
	}
	if len(c.Machines) != 7 || len(c.Coffees) != 5 || len(c.Accompaniments) != 18 || len(c.Accessories) != 5 {
		t.Fatalf("unexpected catalog sizes: %d/%d/%d/%d", len(c.Machines), len(c.Coffees), len(c.Accompaniments), len(c.Accessories))
	}
}

func TestDefaultMachinesDeriveCapacityLabel(t *testing.T) {
	for _, m := range Default().Machines {
		f, ok := m.Feature(domain.FeatureCafe)
		if !ok {
			t.Fatalf("machine %s has no capacity feature", m.ID)
		}
		if f.Label != m.CapacityLabel() {
			t.Fatalf("machine %s label %q does not match numbers %d-%d", m.ID, f.Label, m.MinCupsPerDay, m.MaxCupsPerDay)
		}
		lo, hi := domain.ParseCapacityLabel(f.Label)
		if lo != m.MinCupsPerDay || hi != m.MaxCupsPerDay {
			t.Fatalf("machine %s label round trip gave %d-%d", m.ID, lo, hi)
		}
	}
}

func TestLookups(t *testing.T) {
	c := Default()
	if _, ok := c.Machine("JURA X10"); !ok {
		t.Fatalf("expected JURA X10")
	}
	if _, ok := c.Machine("missing"); ok {
		t.Fatalf("unexpected machine")
	}
	coffee, ok := c.Coffee("coffee-2")
	if !ok || coffee.FlatMonthlyOverride == nil || !coffee.FlatMonthlyOverride.Equal(decimal.RequireFromString("21.60")) {
		t.Fatalf("coffee-2 should carry the flat monthly override, got %+v", coffee)
	}
	if _, ok := c.Accompaniment("accompaniment-6.14"); !ok {
		t.Fatalf("expected accompaniment-6.14")
	}
	if _, ok := c.Accessory("accessory-5.1"); !ok {
		t.Fatalf("expected accessory-5.1")
	}
	m, ok := c.SavingsMachine()
	if !ok || m.ID != DefaultSavingsMachineID {
		t.Fatalf("unexpected savings machine %+v", m)
	}
}

func TestSavingsMachineFallsBackToFirst(t *testing.T) {
	c := &Catalog{Machines: []domain.Machine{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}}
	m, ok := c.SavingsMachine()
	if !ok || m.ID != "a" {
		t.Fatalf("expected first machine, got %+v", m)
	}
	if _, ok := (&Catalog{}).SavingsMachine(); ok {
		t.Fatalf("empty catalog has no savings machine")
	}
}

func TestValidateReportsProblems(t *testing.T) {
	c := &Catalog{
		Machines: []domain.Machine{
			{ID: "m1", Name: "M1", MinCupsPerDay: 50, MaxCupsPerDay: 20},
			{ID: "m1", Name: "M1 bis", Features: []domain.Feature{{Type: "turbo", Label: "Turbo"}}},
		},
		Coffees:        []domain.CoffeeVariety{{ID: "c1", Name: "C1", Intensity: 11}},
		Accompaniments: []domain.Accompaniment{{ID: "a1", Name: "A1", Category: "fruit"}},
		Accessories:    []domain.Accessory{{ID: "x1", Name: "X1", Price: decimal.NewFromInt(-1)}},
	}
	err := c.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{
		`machine "m1": duplicate id`,
		`unknown feature type "turbo"`,
		`coffee "c1"`,
		`accompaniment "a1"`,
		`accessory "x1": negative price`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestTierWarnings(t *testing.T) {
	c := &Catalog{Machines: []domain.Machine{{
		ID:             "odd",
		MonthlyPrice24: decimal.NewFromInt(100),
		MonthlyPrice36: decimal.NewFromInt(120),
		MonthlyPrice48: decimal.NewFromInt(90),
	}}}
	if w := c.TierWarnings(); len(w) != 1 {
		t.Fatalf("expected one warning, got %v", w)
	}
}
