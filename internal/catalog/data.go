package catalog

import (
	"coffee-subscription/internal/domain"

	"github.com/shopspring/decimal"
)

const imageHost = "https://www.justeatemps.com/statique/images/front//img/Products/"

func eur(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func eurPtr(v string) *decimal.Decimal {
	d := eur(v)
	return &d
}

func machine(id, name, description, image, price, m24, m36, m48 string, minCups, maxCups int, extra ...domain.Feature) domain.Machine {
	features := append([]domain.Feature{domain.CapacityFeature(minCups, maxCups)}, extra...)
	return domain.Machine{
		ID:             id,
		Name:           name,
		Description:    description,
		Image:          image,
		Price:          eur(price),
		MonthlyPrice24: eur(m24),
		MonthlyPrice36: eur(m36),
		MonthlyPrice48: eur(m48),
		MinCupsPerDay:  minCups,
		MaxCupsPerDay:  maxCups,
		Features:       features,
	}
}

var (
	compact      = domain.Feature{Type: domain.FeatureCompact, Label: "Compact"}
	milkDrinks   = domain.Feature{Type: domain.FeatureLait, Label: "Boissons lactées"}
	milkSystem   = domain.Feature{Type: domain.FeatureLait, Label: "Système lait"}
	paymentPanel = domain.Feature{Type: domain.FeaturePaiement, Label: "Module de paiement"}
)

// Default returns the built-in catalog. Machine one-time prices include the
// 50 EUR maintenance package.
func Default() *Catalog {
	return &Catalog{
		Machines: []domain.Machine{
			machine("JURA W4", "JURA W4", "Jusqu'à 50 tasses/jour",
				"https://cdn.prod.website-files.com/676921b633d8a05ea45dc26f/67f786a8836b54c81b290565_erasebg-transformed-2.png",
				"2038", "140", "109", "90", 20, 50, compact),
			machine("JURA W8", "JURA W8", "Jusqu'à 50 tasses/jour",
				"https://fr.jura.com/-/media/global/images/professional-products/w-line/w8/w8-ea-sa-dark-inox/w8_ea_darkinox_overview.webp",
				"2038", "140", "109", "90", 20, 50, compact, milkDrinks),
			machine("JURA X4", "JURA X4", "Jusqu'à 100 tasses/jour",
				"https://fr.jura.com/-/media/global/images/professional-products/x-line/X4-EA-SA/x4_ea_sa_darkinox_overview.webp",
				"2150", "165", "125", "105", 50, 150, compact),
			machine("JURA X10", "JURA X10", "Jusqu'à 100 tasses/jour",
				"https://fr.jura.com/-/media/global/images/professional-products/x-line/X10-EA-SA/x10_ea_sa_darkinox_overview.webp",
				"2690", "185", "140", "115", 50, 150, compact, milkDrinks),
			machine("JURA GIGA X3", "JURA GIGA X3", "Jusqu'à 150 tasses/jour",
				"https://fr.jura.com/-/media/global/images/professional-products/giga-professional-line/giga-x3-gen2/overview_GIGAX3_g2.webp",
				"4603", "275", "200", "165", 150, 300, paymentPanel, milkSystem),
			machine("JURA GIGA X8", "JURA GIGA X8", "Jusqu'à 200 tasses/jour",
				"https://fr.jura.com/-/media/global/images/professional-products/giga-professional-line/giga-x8-gen2/AluBlack/overview_gigax8_g2_aluminium_black.webp",
				"6395", "345", "245", "199", 200, 300, paymentPanel, milkSystem),
			machine("NECTA KREA", "NECTA KREA TOUCH", "Jusqu'à 100 tasses/jour",
				imageHost+"large/16303.jpg",
				"4050", "250", "189", "150", 80, 120, paymentPanel, milkDrinks),
		},
		Coffees: []domain.CoffeeVariety{
			{ID: "coffee-1", Reference: "1502", Brand: "MIKO", Name: "Café économie - 1kg", Intensity: 8,
				Description: "Un café intense et corsé", Image: imageHost + "large/1502.jpg", Price: eur("20.80")},
			{ID: "coffee-2", Reference: "17484", Brand: "LES PROD'ACTEURS", Name: "Café de spécialité - 1kg", Intensity: 7,
				Description: "Un café doux et équilibré", Image: imageHost + "large/17484.jpg", Price: eur("21.60"),
				CupPriceOverride: eurPtr("0.18"), FlatMonthlyOverride: eurPtr("21.60")},
			{ID: "coffee-3", Reference: "1523", Brand: "PURO", Name: "Café bio - 1kg", Intensity: 6,
				Description: "Un café à l'équilibre parfait entre douceur et intensité", Image: imageHost + "xlarge/1523.jpg", Price: eur("22.16")},
			{ID: "coffee-5", Reference: "17624", Brand: "CHANGEPLEASE", Name: "Café social - 1kg", Intensity: 5,
				Description: "Un café aromatique et engagé", Image: imageHost + "xlarge/17624.jpg", Price: eur("30.00")},
			{ID: "coffee-6", Reference: "16330", Brand: "CAFÉ JOYEUX", Name: "Café éthique - 1kg", Intensity: 6,
				Description: "Un café équilibré et éthique",
				Image:       "https://cdn.prod.website-files.com/676921b633d8a05ea45dc26f/676921b633d8a05ea45dc27e_Cafe%CC%81%20joyeux.png",
				Price:       eur("32.89")},
		},
		Accompaniments: []domain.Accompaniment{
			{ID: "accompaniment-1", Name: "Mignonettes Côte d'Or lait", Description: "Mignonettes Côte d'Or lait - 120 unités",
				Image: imageHost + "large/12374.jpg", Price: eur("28.89"), Category: domain.CategoryChocolate},
			{ID: "accompaniment-2", Name: "Carrés chocolat Monbana", Description: "Carrés de chocolat Monbana 4g - 200 unités",
				Image: imageHost + "large/1840.jpg", Price: eur("39.90"), Category: domain.CategoryChocolate},
			{ID: "accompaniment-2.1", Name: "Mini chocolat noir 70% Lindt", Description: "Mini chocolat noir 70% LINDT - 200 unités",
				Image: imageHost + "large/14609.jpg", Price: eur("61.90"), Category: domain.CategoryChocolate},
			{ID: "accompaniment-2.4", Name: "Amandes cacaotées Monbana", Description: "Amandes cacaotées Monbana - 200 unités",
				Image: imageHost + "large/1839.jpg", Price: eur("32.90"), Category: domain.CategoryChocolate},
			{ID: "accompaniment-2.9", Name: "Mini chocolat noir 75% Alain Ducasse", Description: "Mini chocolat noir 75% Alain Ducasse - 200 unités",
				Image: "https://cdn.prod.website-files.com/676921b633d8a05ea45dc26f/67f8ea5769a25cc64461505b_17345.png", Price: eur("149.50"), Category: domain.CategoryChocolate},
			{ID: "accompaniment-2.10", Name: "Mini crêpes dentelles chocolat Angelina", Description: "Mini crêpes dentelles enrobées de chocolat Angelina - Lot de 250 unités",
				Image: imageHost + "large/17136.jpg", Price: eur("87.49"), Category: domain.CategoryChocolate},
			{ID: "accompaniment-3", Name: "Petites galettes Bonne Maman", Description: "Petites galettes nature Bonne maman - 200 unités",
				Image: imageHost + "xlarge/10240.jpg", Price: eur("37.50"), Category: domain.CategoryBiscuit},
			{ID: "accompaniment-4", Name: "Spéculoos Puro", Description: "Mini spéculoos PURO - 200 unités",
				Image: imageHost + "large/1355.jpg", Price: eur("22.69"), Category: domain.CategoryBiscuit},
			{ID: "accompaniment-4.2", Name: "Madelainettes St Michel", Description: "Mini madelaines St Michel - 350 unités",
				Image: imageHost + "large/11664.jpg", Price: eur("59.90"), Category: domain.CategoryBiscuit},
			{ID: "accompaniment-4.3", Name: "Petites galettes pépites de chocolat St Michel", Description: "Mini galettes pépites de chocolat - 200 unités",
				Image: imageHost + "large/10236.jpg", Price: eur("29.09"), Category: domain.CategoryBiscuit},
			{ID: "accompaniment-4.8", Name: "Mini Speculoos LOTUS", Description: "Mini Speculoos LOTUS - 400 unités",
				Image: imageHost + "xlarge/17212_1.jpg", Price: eur("37.69"), Category: domain.CategoryBiscuit},
			{ID: "accompaniment-4.9", Name: "Mini financier Bonne Maman", Description: "Mini financier Bonne Maman - 200 unités",
				Image: imageHost + "large/17706.jpg", Price: eur("44.50"), Category: domain.CategoryBiscuit},
			{ID: "accompaniment-6", Name: "Bûchettes de sucre roux Terre de café", Description: "Bûchettes de sucre roux Terre de café - 1000 unités",
				Image: imageHost + "large/17167.jpg", Price: eur("52.69"), Category: domain.CategorySucre},
			{ID: "accompaniment-6.14", Name: "Morceaux de sucre de canne Perruche", Description: "Morceaux de sucre de canne Perruche - 5000 unités",
				Image: imageHost + "large/2225.jpg", Price: eur("67.89"), Category: domain.CategorySucre},
			{ID: "accompaniment-6.8", Name: "Bûchettes de sucre brun Puro", Description: "Bûchettes de sucre brun Fairtrade Puro - 1000 unités",
				Image: imageHost + "large/13440.jpg", Price: eur("38.99"), Category: domain.CategorySucre},
			{ID: "accompaniment-6.2", Name: "Édulcorant stévia Pure viva", Description: "Édulcorant Stévia Pure viva - 40 unités",
				Image: imageHost + "large/17608.jpg", Price: eur("5.19"), Category: domain.CategorySucre},
			{ID: "accompaniment-6.9", Name: "Coupelles de lait concentré Puro", Description: "Coupelles de lait concentré Puro 7ml - 200 unités",
				Image: imageHost + "large/1966.jpg", Price: eur("28.35"), Category: domain.CategorySucre},
			{ID: "accompaniment-6.10", Name: "Coupelles de lait concentré MIKO", Description: "Coupelles de lait concentré 7ml MIKO - 240 unités",
				Image: imageHost + "large/1967.jpg", Price: eur("31.19"), Category: domain.CategorySucre},
		},
		Accessories: []domain.Accessory{
			{ID: "accessory-3", Name: "Agitateur en bois", Description: "Lot de 100 unités", Image: imageHost + "large/16296.jpg", Price: eur("21.39")},
			{ID: "accessory-4", Name: "Gobelet bio-compostable", Description: "Lot de 50 unités", Image: imageHost + "large/16293.jpg", Price: eur("5.49")},
			{ID: "accessory-4.4", Name: "Gobelet en carton blanc 20-25cl", Description: "Lot de 50 unités", Image: imageHost + "large/17173.jpg", Price: eur("6.09")},
			{ID: "accessory-5", Name: "Agitateurs en bois", Description: "Lot de 1000 unités", Image: imageHost + "large/10892.jpg", Price: eur("13.59")},
			{ID: "accessory-5.1", Name: "Gobelet en carton Juste à temps 18-20cl", Description: "Lot de 100 unités", Image: imageHost + "xlarge/12144.jpg", Price: eur("9.19")},
		},
	}
}
