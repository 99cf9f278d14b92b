package catalog

import "taproom/internal/core/domain/model/kernel"

// Ids of products the storefront refers to by name.
const (
	GrowlerPilsen     ProductID = "growler-pilsen-cristal-1l"
	GrowlerWhiteWine  ProductID = "growler-vinho-branco-1l"
	GrowlerRedWine    ProductID = "growler-vinho-tinto-1l"
	GrowlerSessionIPA ProductID = "growler-session-ipa-1l"
	KegPilsen30       ProductID = "keg-pilsen-30"
	KegPilsen50       ProductID = "keg-pilsen-50"
)

type productRow struct {
	id       ProductID
	name     string
	category Category
	style    Style
	price    uint32
	liters   int
	flags    []Flag
}

func defaultRows() []productRow {
	return []productRow{
		{GrowlerPilsen, "Pilsen Cristal 1L", Growler, Pilsen, 16, 1, []Flag{FlagChampion}},
		{GrowlerWhiteWine, "Chopp de Vinho Branco 1L", Growler, Lager, 20, 1, []Flag{FlagPopular, FlagWine}},
		{GrowlerRedWine, "Chopp de Vinho Tinto 1L", Growler, Lager, 20, 1, []Flag{FlagPopular, FlagWine}},
		{GrowlerSessionIPA, "Session IPA 1L", Growler, IPA, 22, 1, []Flag{FlagPopular}},
		{"growler-premium-lager-1l", "Premium Lager 1L", Growler, Lager, 17, 1, nil},
		{"growler-weiss-1l", "Hefe Weiss 1L", Growler, Weiss, 22, 1, nil},
		{"growler-amber-lager-1l", "Amber Lager 1L", Growler, Amber, 22, 1, nil},
		{"growler-munich-dunkel-1l", "Munich Dunkel 1L", Growler, Dunkel, 22, 1, nil},
		{"growler-apa-1l", "APA (American Pale Ale) 1L", Growler, APA, 22, 1, nil},
		{"growler-red-ale-1l", "Irish Red Ale 1L", Growler, RedAle, 22, 1, nil},
		{"growler-vienna-lager-1l", "Vienna Lager 1L", Growler, Vienna, 22, 1, nil},
		{"growler-american-ipa-1l", "American IPA 1L", Growler, IPA, 26, 1, nil},
		{"growler-sour-amarelas-1l", "Sour Frutas Amarelas 1L", Growler, Sour, 30, 1, nil},
		{"growler-sour-vermelhas-1l", "Sour Frutas Vermelhas 1L", Growler, Sour, 30, 1, nil},
		{KegPilsen30, "Barril Pilsen 30L", Keg30, Pilsen, 387, 30, []Flag{FlagChampion}},
		{"keg-lager-30", "Barril Premium Lager 30L", Keg30, Lager, 420, 30, []Flag{FlagPopular}},
		{"keg-vinho-branco-30", "Barril Vinho Branco 30L", Keg30, Lager, 450, 30, []Flag{FlagPopular, FlagWine}},
		{"keg-vinho-tinto-30", "Barril Vinho Tinto 30L", Keg30, Lager, 450, 30, []Flag{FlagWine}},
		{"keg-session-ipa-30", "Barril Session IPA 30L", Keg30, IPA, 480, 30, nil},
		{KegPilsen50, "Barril Pilsen 50L", Keg50, Pilsen, 645, 50, []Flag{FlagChampion}},
		{"keg-lager-50", "Barril Premium Lager 50L", Keg50, Lager, 740, 50,
			[]Flag{FlagPopular, FlagRequiresAvailabilityCheck}},
	}
}

// DefaultCatalog returns the house product list. Base prices are the
// Marechal Cândido Rondon prices.
func DefaultCatalog() (*Catalog, error) {
	rows := defaultRows()
	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		p, err := NewProduct(row.id, row.name, row.category, row.style, kernel.Reais(row.price), row.liters, row.flags...)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return NewCatalog(products...)
}

// DefaultPriceTable returns the house price table: Marechal Cândido Rondon sells
// at base prices, Foz do Iguaçu has a handful of overrides and a per-category surcharge.
func DefaultPriceTable() (PriceTable, error) {
	return NewPriceTable(LocationPricing{
		Location: kernel.FozDoIguacu,
		Overrides: map[ProductID]kernel.Money{
			GrowlerPilsen:     kernel.Reais(18),
			GrowlerSessionIPA: kernel.Reais(24),
			KegPilsen30:       kernel.Reais(420),
			KegPilsen50:       kernel.Reais(700),
		},
		Surcharges: map[Category]kernel.Money{
			Growler: kernel.Reais(2),
			Keg30:   kernel.Reais(30),
			Keg50:   kernel.Reais(50),
		},
	})
}
