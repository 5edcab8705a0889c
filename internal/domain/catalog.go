package domain

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

// CupsPerKilogram is the fixed conversion between a kilogram of beans and served cups.
const CupsPerKilogram = 120

type FeatureType string

const (
	FeatureCafe     FeatureType = "cafe"
	FeatureBureau   FeatureType = "bureau"
	FeatureRapide   FeatureType = "rapide"
	FeaturePremium  FeatureType = "premium"
	FeatureEco      FeatureType = "eco"
	FeatureCompact  FeatureType = "compact"
	FeaturePaiement FeatureType = "paiement"
	FeatureLait     FeatureType = "lait"
)

// Valid reports whether t is one of the known feature types.
func (t FeatureType) Valid() bool {
	switch t {
	case FeatureCafe, FeatureBureau, FeatureRapide, FeaturePremium, FeatureEco, FeatureCompact, FeaturePaiement, FeatureLait:
		return true
	}
	return false
}

type Feature struct {
	Type  FeatureType `json:"type" validate:"required"`
	Label string      `json:"label" validate:"required"`
}

// Machine is a rentable coffee machine. Capacity is kept as numbers; the
// "cafe" feature label is derived from them.
type Machine struct {
	ID             string          `json:"id" validate:"required"`
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description,omitempty"`
	Image          string          `json:"image,omitempty"`
	Price          decimal.Decimal `json:"price"`
	MonthlyPrice24 decimal.Decimal `json:"monthlyPrice24"`
	MonthlyPrice36 decimal.Decimal `json:"monthlyPrice36"`
	MonthlyPrice48 decimal.Decimal `json:"monthlyPrice48"`
	MinCupsPerDay  int             `json:"minCupsPerDay" validate:"gte=0"`
	MaxCupsPerDay  int             `json:"maxCupsPerDay" validate:"gtefield=MinCupsPerDay"`
	Features       []Feature       `json:"features" validate:"dive"`
}

// MonthlyPrice returns the monthly rate for the given contract duration.
// Unknown durations fall back to the 36 month rate.
func (m Machine) MonthlyPrice(d ContractDuration) decimal.Decimal {
	switch d {
	case Duration24:
		return m.MonthlyPrice24
	case Duration48:
		return m.MonthlyPrice48
	default:
		return m.MonthlyPrice36
	}
}

func (m Machine) HasFeature(t FeatureType) bool {
	_, ok := m.Feature(t)
	return ok
}

// Feature returns the first feature of type t.
func (m Machine) Feature(t FeatureType) (Feature, bool) {
	for _, f := range m.Features {
		if f.Type == t {
			return f, true
		}
	}
	return Feature{}, false
}

// HasCapacity reports whether a daily cup range is known for the machine.
func (m Machine) HasCapacity() bool {
	return m.MaxCupsPerDay > 0
}

func (m Machine) CapacityLabel() string {
	return CapacityLabel(m.MinCupsPerDay, m.MaxCupsPerDay)
}

// CapacityLabel renders a daily cup range the way the catalog displays it.
func CapacityLabel(minCups, maxCups int) string {
	return fmt.Sprintf("%d à %d tasses/jour", minCups, maxCups)
}

// CapacityFeature builds the "cafe" feature for a cup range.
func CapacityFeature(minCups, maxCups int) Feature {
	return Feature{Type: FeatureCafe, Label: CapacityLabel(minCups, maxCups)}
}

var capacityPattern = regexp.MustCompile(`(\d+)\s*à\s*(\d+)`)

// ParseCapacityLabel extracts "<min> à <max>" from a free text label.
// Labels that do not match yield (0, 0).
func ParseCapacityLabel(label string) (int, int) {
	m := capacityPattern.FindStringSubmatch(label)
	if len(m) < 3 {
		return 0, 0
	}
	minCups, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0
	}
	maxCups, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0
	}
	return minCups, maxCups
}

type CoffeeVariety struct {
	ID          string          `json:"id" validate:"required"`
	Reference   string          `json:"reference,omitempty"`
	Brand       string          `json:"brand,omitempty"`
	Name        string          `json:"name" validate:"required"`
	Intensity   int             `json:"intensity" validate:"min=1,max=10"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
	Price       decimal.Decimal `json:"price"`
	// CupPriceOverride pins the per-cup rate instead of deriving it from Price.
	CupPriceOverride *decimal.Decimal `json:"cupPriceOverride,omitempty"`
	// FlatMonthlyOverride replaces the per-unit monthly contribution with a
	// flat amount counted once per variety, whatever the quantity.
	FlatMonthlyOverride *decimal.Decimal `json:"flatMonthlyOverride,omitempty"`
}

// PricePerCup returns the cost of a single cup.
func (c CoffeeVariety) PricePerCup() decimal.Decimal {
	if c.CupPriceOverride != nil {
		return *c.CupPriceOverride
	}
	return c.Price.Div(decimal.NewFromInt(CupsPerKilogram))
}

type AccompanimentCategory string

const (
	CategoryChocolate AccompanimentCategory = "chocolate"
	CategoryBiscuit   AccompanimentCategory = "biscuit"
	CategorySucre     AccompanimentCategory = "sucre"
)

type Accompaniment struct {
	ID          string                `json:"id" validate:"required"`
	Name        string                `json:"name" validate:"required"`
	Description string                `json:"description,omitempty"`
	Image       string                `json:"image,omitempty"`
	Price       decimal.Decimal       `json:"price"`
	Category    AccompanimentCategory `json:"category" validate:"oneof=chocolate biscuit sucre"`
}

type Accessory struct {
	ID          string          `json:"id" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
	Price       decimal.Decimal `json:"price"`
}
