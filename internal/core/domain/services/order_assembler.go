package services

import (
	"fmt"
	"strings"
	"time"

	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/checkout"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/order"
	"taproom/internal/pkg/errs"
)

var ErrValidationIncomplete = errs.NewValueIsRequiredError("checkout form")

// OrderAssembler turns a cart and a completed checkout form into an order record.
//
// Business rules:
//   - the form must satisfy the required-field set of the cart
//   - delivery orders carry the fixed freight fee, pickup orders none
//   - registration data is copied only for new customers
//   - keg orders carry the event block (with defaults) unless it was deferred
type OrderAssembler struct {
	freight kernel.Money
}

func NewOrderAssembler(freight kernel.Money) OrderAssembler {
	return OrderAssembler{freight: freight}
}

// Freight is the fee for method.
func (a OrderAssembler) Freight(method checkout.DeliveryMethod) kernel.Money {
	if method == checkout.Delivery {
		return a.freight
	}
	return kernel.Money{}
}

// Assemble builds a Submitted order for location.
func (a OrderAssembler) Assemble(
	id kernel.UUID,
	location kernel.Location,
	c *cart.Cart,
	form checkout.Form,
	now time.Time,
) (*order.Order, error) {
	profile := checkout.CartProfile{HasKeg: c.HasKeg()}
	if missing := checkout.MissingFields(form, profile); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrValidationIncomplete, joinFields(missing))
	}

	customer := order.Customer{
		Name:  strings.TrimSpace(form.Name),
		Phone: strings.TrimSpace(form.Phone),
		Type:  form.CustomerType,
	}
	if form.CustomerType == checkout.NewCustomer {
		residential := form.Residential
		customer.GovernmentID = form.GovernmentID
		customer.BirthDate = form.BirthDate
		customer.Residential = &residential
	}

	fulfillment := order.Fulfillment{
		Method:               form.DeliveryMethod,
		Address:              form.ShippingAddress(profile),
		Event:                form.EventFor(profile),
		EventDetailsDeferred: profile.HasKeg && form.EventDetailsDeferred,
	}

	items := c.Items()
	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, order.LineFromCart(item))
	}

	return order.NewOrder(id, location, customer, fulfillment, lines, form.PaymentMethod,
		a.Freight(form.DeliveryMethod), now)
}

func joinFields(fields []checkout.Field) string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
