package order

import (
	"errors"
	"fmt"
	"time"

	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/checkout"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
	"taproom/internal/pkg/guard"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrOrderHasNoLines       = errs.NewValueIsRequiredError("lines")
	ErrPickupHasFreight      = errs.NewValueIsInvalidErrorWithCause("freight", errors.New("pickup orders carry no freight"))
)

// Line is one priced product of an order.
type Line struct {
	ProductID      catalog.ProductID
	Name           string
	Category       catalog.Category
	Quantity       int
	Extras         cart.Extras
	EffectivePrice kernel.Money
	UpsellOrigin   bool
}

// LineFromCart snapshots a cart line item.
func LineFromCart(item cart.LineItem) Line {
	return Line{
		ProductID:      item.ProductID(),
		Name:           item.Product().Name(),
		Category:       item.Product().Category(),
		Quantity:       item.Quantity(),
		Extras:         item.Extras(),
		EffectivePrice: item.EffectivePrice(),
		UpsellOrigin:   item.IsUpsellOrigin(),
	}
}

// UnitPrice is the effective price plus extras surcharge.
func (l Line) UnitPrice() kernel.Money {
	return l.EffectivePrice.Add(l.Extras.Surcharge())
}

// Total is UnitPrice times quantity.
func (l Line) Total() kernel.Money {
	return l.UnitPrice().Mul(l.Quantity)
}

func (l Line) validate() error {
	if l.ProductID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	if l.Quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", l.Quantity, 1, "unbounded")
	}
	return l.Extras.Mugs.Validate()
}

// Customer identifies who placed the order. Registration fields are set only for new customers.
type Customer struct {
	Name         string
	Phone        string
	Type         checkout.CustomerType
	GovernmentID string
	BirthDate    string
	Residential  *checkout.Address
}

// Fulfillment describes how the order reaches the customer.
// Address is set for growler deliveries, Event for kegs with event details.
type Fulfillment struct {
	Method               checkout.DeliveryMethod
	Address              *checkout.Address
	Event                *checkout.EventDetails
	EventDetailsDeferred bool
}

// Order is the terminal record of a checkout.
//
// Invariants:
//   - valid id and known location
//   - at least one line, each with quantity >= 1
//   - subtotal = sum(line totals); total = subtotal + freight
//   - pickup orders have zero freight
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), kernel.FozDoIguacu, customer, fulfillment,
//	    lines, checkout.PaymentPix, kernel.Reais(10), time.Now())
type Order struct {
	id          kernel.UUID
	location    kernel.Location
	customer    Customer
	fulfillment Fulfillment
	lines       []Line
	payment     checkout.PaymentMethod
	freight     kernel.Money
	createdAt   time.Time
	status      Status

	guard guard.ConstructorGuard
}

// NewOrder assembles a Submitted order.
func NewOrder(
	id kernel.UUID,
	location kernel.Location,
	customer Customer,
	fulfillment Fulfillment,
	lines []Line,
	payment checkout.PaymentMethod,
	freight kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	return RestoreOrder(id, location, customer, fulfillment, lines, payment, freight, createdAt, Submitted)
}

// RestoreOrder rebuilds an order from the journal with its stored status.
func RestoreOrder(
	id kernel.UUID,
	location kernel.Location,
	customer Customer,
	fulfillment Fulfillment,
	lines []Line,
	payment checkout.PaymentMethod,
	freight kernel.Money,
	createdAt time.Time,
	status Status,
) (*Order, error) {
	o := &Order{
		customer:    customer,
		fulfillment: fulfillment,
		payment:     payment,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setLocation(location),
		o.setLines(lines),
		o.setFreight(freight),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Location() kernel.Location {
	return o.location
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Fulfillment() Fulfillment {
	return o.fulfillment
}

func (o *Order) PaymentMethod() checkout.PaymentMethod {
	return o.payment
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Status() Status {
	return o.status
}

// Lines returns a copy of every line in cart order.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// RegularLines returns the lines the customer added while browsing.
func (o *Order) RegularLines() []Line {
	return o.filterLines(false)
}

// UpsellLines returns the lines added from an upsell suggestion.
func (o *Order) UpsellLines() []Line {
	return o.filterLines(true)
}

// Subtotal is the sum of the line totals.
func (o *Order) Subtotal() kernel.Money {
	var subtotal kernel.Money
	for _, line := range o.lines {
		subtotal = subtotal.Add(line.Total())
	}
	return subtotal
}

func (o *Order) Freight() kernel.Money {
	return o.freight
}

// Total is Subtotal plus Freight.
func (o *Order) Total() kernel.Money {
	return o.Subtotal().Add(o.freight)
}

// Dispatch marks the order as published.
func (o *Order) Dispatch() error {
	next, err := o.status.Dispatch()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) filterLines(upsell bool) []Line {
	var out []Line
	for _, line := range o.lines {
		if line.UpsellOrigin == upsell {
			out = append(out, line)
		}
	}
	return out
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLocation(location kernel.Location) error {
	if !location.IsKnown() {
		return errs.NewValueIsInvalidErrorWithCause("location", fmt.Errorf("order needs a known location, got %s", location))
	}
	o.location = location
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	var errList []error
	for _, line := range lines {
		errList = append(errList, line.validate())
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setFreight(freight kernel.Money) error {
	if o.fulfillment.Method == checkout.Pickup && !freight.IsZero() {
		return ErrPickupHasFreight
	}
	o.freight = freight
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
