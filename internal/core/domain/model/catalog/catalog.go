package catalog

import (
	"errors"
	"fmt"

	"taproom/internal/pkg/errs"
)

var ErrCatalogIsEmpty = errs.NewValueIsRequiredError("products")

// Catalog is the ordered, read-only product list loaded at start-up.
// Order is preserved because it is the display order and the tie-break order
// for upsell ranking.
type Catalog struct {
	products []Product
	index    map[ProductID]int
}

// NewCatalog indexes products, rejecting invalid entries and duplicate ids.
func NewCatalog(products ...Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrCatalogIsEmpty
	}

	c := &Catalog{
		products: make([]Product, 0, len(products)),
		index:    make(map[ProductID]int, len(products)),
	}

	var errList []error
	for _, p := range products {
		if err := p.Validate(); err != nil {
			errList = append(errList, err)
			continue
		}
		if _, dup := c.index[p.ID()]; dup {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("duplicate product %q", p.ID())))
			continue
		}
		c.index[p.ID()] = len(c.products)
		c.products = append(c.products, p)
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return c, nil
}

// Get looks a product up by id.
func (c *Catalog) Get(id ProductID) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Products returns a copy of all products in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByCategory returns the products of one category in catalog order.
func (c *Catalog) ByCategory(category Category) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Category() == category {
			out = append(out, p)
		}
	}
	return out
}
