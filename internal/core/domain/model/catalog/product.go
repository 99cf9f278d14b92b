package catalog

import (
	"errors"
	"fmt"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
	"taproom/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct")

// ProductID is the stable catalog key of a product, e.g. "growler-pilsen-cristal-1l".
type ProductID string

// Flag is a promotional marker on a product. Flags combine with bitwise OR.
type Flag uint8

const (
	// FlagPopular marks a best seller ("Mais Pedido").
	FlagPopular Flag = 1 << iota

	// FlagChampion marks a sales champion; champions rank first among leftover upsell candidates.
	FlagChampion

	// FlagRequiresAvailabilityCheck marks products whose stock must be confirmed by the operator.
	FlagRequiresAvailabilityCheck

	// FlagWine marks wine-based draft products regardless of their style tag.
	FlagWine
)

// Product is an immutable catalog entry.
//
// Business Rules:
//   - id and name are required
//   - category and style must be known values
//   - volume is positive liters
//   - basePrice is the location-independent price (Money is never negative)
//
// Example:
//
//	pilsen, err := catalog.NewProduct(
//	    "growler-pilsen-cristal-1l", "Pilsen Cristal 1L",
//	    catalog.Growler, catalog.Pilsen, kernel.Reais(16), 1,
//	    catalog.FlagChampion,
//	)
type Product struct {
	id           ProductID
	name         string
	category     Category
	style        Style
	basePrice    kernel.Money
	volumeLiters int
	flags        Flag

	guard guard.ConstructorGuard
}

// NewProduct validates every attribute and returns the product or the joined validation errors.
func NewProduct(
	id ProductID,
	name string,
	category Category,
	style Style,
	basePrice kernel.Money,
	volumeLiters int,
	flags ...Flag,
) (Product, error) {
	p := Product{
		basePrice: basePrice,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
		p.setStyle(style),
		p.setVolume(volumeLiters),
	); err != nil {
		return Product{}, err
	}

	for _, f := range flags {
		p.flags |= f
	}

	return p, nil
}

func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p Product) ID() ProductID {
	return p.id
}

func (p Product) Name() string {
	return p.name
}

func (p Product) Category() Category {
	return p.category
}

func (p Product) Style() Style {
	return p.style
}

func (p Product) BasePrice() kernel.Money {
	return p.basePrice
}

func (p Product) VolumeLiters() int {
	return p.volumeLiters
}

func (p Product) IsPopular() bool {
	return p.flags&FlagPopular != 0
}

func (p Product) IsChampion() bool {
	return p.flags&FlagChampion != 0
}

func (p Product) RequiresAvailabilityCheck() bool {
	return p.flags&FlagRequiresAvailabilityCheck != 0
}

func (p Product) IsWine() bool {
	return p.flags&FlagWine != 0
}

func (p *Product) setID(id ProductID) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Product) setStyle(style Style) error {
	if err := style.Validate(); err != nil {
		return err
	}
	p.style = style
	return nil
}

func (p *Product) setVolume(liters int) error {
	if liters <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume", fmt.Errorf("%d liters must be positive", liters))
	}
	p.volumeLiters = liters
	return nil
}

// PricedProduct is a Product projected through the price table of one Location.
// It is derived on demand and never stored.
type PricedProduct struct {
	Product        Product
	EffectivePrice kernel.Money
}
