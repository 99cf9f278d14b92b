package cart

import (
	"fmt"

	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
)

// Cart is the ordered set of line items of one session plus its pinned location.
//
// The cart never checks locations itself: the cart guard decides whether an
// add is allowed and pins the cart. Cart enforces the structural invariants
// (one line per product, quantity >= 1, empty implies unpinned).
//
// Example:
//
//	c := cart.NewCart()
//	_ = c.Add(pilsen, kernel.Reais(16), cart.ExtrasPatch{}, false)
//	c.Pin(kernel.MarechalCandidoRondon)
//	fmt.Println(c.Total()) // 16.00
type Cart struct {
	items  []*LineItem
	pinned kernel.Location
}

func NewCart() *Cart {
	return &Cart{}
}

// Clone returns a deep copy, so a failed operation can be discarded without
// touching the stored cart.
func (c *Cart) Clone() *Cart {
	clone := &Cart{pinned: c.pinned, items: make([]*LineItem, 0, len(c.items))}
	for _, item := range c.items {
		copied := *item
		clone.items = append(clone.items, &copied)
	}
	return clone
}

// Items returns copies of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, *item)
	}
	return out
}

// Item returns a copy of the line item for productID.
func (c *Cart) Item(productID catalog.ProductID) (LineItem, bool) {
	if item := c.find(productID); item != nil {
		return *item, true
	}
	return LineItem{}, false
}

func (c *Cart) Contains(productID catalog.ProductID) bool {
	return c.find(productID) != nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Len() int {
	return len(c.items)
}

// PinnedLocation is LocationUnknown while the cart is empty or no store was chosen yet.
func (c *Cart) PinnedLocation() kernel.Location {
	return c.pinned
}

func (c *Cart) IsPinned() bool {
	return c.pinned != kernel.LocationUnknown
}

// Pin binds a non-empty cart to a known location. Pinning an empty cart or to
// LocationUnknown is ignored so the empty-implies-unpinned invariant holds.
func (c *Cart) Pin(location kernel.Location) {
	if c.IsEmpty() || !location.IsKnown() {
		return
	}
	c.pinned = location
}

// Add merges product into the cart: an existing line gets quantity+1 and the
// patch merged into its extras, otherwise a new line is appended with quantity 1.
// The effective price of an existing line is refreshed to effectivePrice.
func (c *Cart) Add(product catalog.Product, effectivePrice kernel.Money, patch ExtrasPatch, upsellOrigin bool) error {
	if err := product.Validate(); err != nil {
		return err
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	if item := c.find(product.ID()); item != nil {
		item.quantity++
		item.effectivePrice = effectivePrice
		item.applyExtras(patch)
		return nil
	}

	item := &LineItem{
		product:        product,
		quantity:       1,
		effectivePrice: effectivePrice,
		upsellOrigin:   upsellOrigin,
	}
	item.applyExtras(patch)
	c.items = append(c.items, item)
	return nil
}

// Remove deletes the line of productID. Removing the last line unpins the cart.
func (c *Cart) Remove(productID catalog.ProductID) error {
	for i, item := range c.items {
		if item.product.ID() == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			if c.IsEmpty() {
				c.pinned = kernel.LocationUnknown
			}
			return nil
		}
	}
	return errs.NewObjectNotFoundError("productId", string(productID))
}

// MaxQuantityDelta bounds a single quantity change in either direction.
const MaxQuantityDelta = 999

// UpdateQuantity adds delta to the quantity of productID, clamping the result to at least one.
func (c *Cart) UpdateQuantity(productID catalog.ProductID, delta int) error {
	if delta < -MaxQuantityDelta || delta > MaxQuantityDelta {
		return errs.NewValueIsOutOfRangeError("delta", delta, -MaxQuantityDelta, MaxQuantityDelta)
	}
	item := c.find(productID)
	if item == nil {
		return errs.NewObjectNotFoundError("productId", string(productID))
	}
	item.quantity = max(1, item.quantity+delta)
	return nil
}

// Clear empties and unpins the cart.
func (c *Cart) Clear() {
	c.items = nil
	c.pinned = kernel.LocationUnknown
}

// Reprice overwrites the effective price of every line with priceOf(product).
func (c *Cart) Reprice(priceOf func(catalog.Product) kernel.Money) {
	for _, item := range c.items {
		item.effectivePrice = priceOf(item.product)
	}
}

// ApplyToKegs merges patch into the extras of every keg line.
func (c *Cart) ApplyToKegs(patch ExtrasPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	for _, item := range c.items {
		item.applyExtras(patch)
	}
	return nil
}

// HasKeg reports whether any line is a 30 L or 50 L keg.
func (c *Cart) HasKeg() bool {
	for _, item := range c.items {
		if item.product.Category().IsKeg() {
			return true
		}
	}
	return false
}

// HasGrowler reports whether any line is a growler.
func (c *Cart) HasGrowler() bool {
	for _, item := range c.items {
		if item.product.Category() == catalog.Growler {
			return true
		}
	}
	return false
}

// Total is the sum of line subtotals, without freight.
func (c *Cart) Total() kernel.Money {
	var total kernel.Money
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// String is a compact description for logs.
func (c *Cart) String() string {
	return fmt.Sprintf("cart{items: %d, pinned: %s, total: %s}", len(c.items), c.pinned, c.Total())
}

func (c *Cart) find(productID catalog.ProductID) *LineItem {
	for _, item := range c.items {
		if item.product.ID() == productID {
			return item
		}
	}
	return nil
}
