package checkout

import "strings"

const (
	// DefaultEventTime is used when the customer leaves the event time blank.
	DefaultEventTime = "A combinar"

	// DefaultVoltage is used when the customer leaves the chopeira voltage blank.
	DefaultVoltage = "220V"
)

// Address is a street / neighborhood / city triple.
type Address struct {
	Street       string
	Neighborhood string
	City         string
}

// IsZero reports whether every part is blank.
func (a Address) IsZero() bool {
	return isBlank(a.Street) && isBlank(a.Neighborhood) && isBlank(a.City)
}

// EventDetails describes where and when a keg is delivered.
// Time and Voltage are optional.
type EventDetails struct {
	ReceiverName string
	Address      string
	City         string
	Date         string
	Time         string
	Voltage      string
}

// WithDefaults fills the optional Time and Voltage.
func (e EventDetails) WithDefaults() EventDetails {
	if isBlank(e.Time) {
		e.Time = DefaultEventTime
	}
	if isBlank(e.Voltage) {
		e.Voltage = DefaultVoltage
	}
	return e
}

// Form is everything the customer types during checkout. It is a plain value;
// which fields must be filled is derived by RequiredFields.
type Form struct {
	Name         string
	Phone        string
	CustomerType CustomerType

	// Registration data, required for new customers only.
	GovernmentID string
	BirthDate    string
	Residential  Address

	DeliveryMethod DeliveryMethod

	// ShipToDifferentAddress lets a new customer deliver somewhere other than
	// the residential address. Returning customers always fill DeliveryAddress.
	ShipToDifferentAddress bool
	DeliveryAddress        Address

	// EventDetailsDeferred lets keg customers settle event logistics later with the operator.
	EventDetailsDeferred bool
	Event                EventDetails

	PaymentMethod PaymentMethod
}

// ShippingAddress is the address an order goes to, or nil when none applies:
// pickup orders, keg orders (the event address is used instead) and forms
// still missing the address.
func (f Form) ShippingAddress(profile CartProfile) *Address {
	if f.DeliveryMethod == Pickup || profile.HasKeg {
		return nil
	}

	address := f.DeliveryAddress
	if f.CustomerType == NewCustomer && !f.ShipToDifferentAddress {
		address = f.Residential
	}
	if address.IsZero() {
		return nil
	}
	return &address
}

// EventFor returns the event block with defaults applied, or nil when the cart
// has no keg or the customer deferred the details.
func (f Form) EventFor(profile CartProfile) *EventDetails {
	if !profile.HasKeg || f.EventDetailsDeferred {
		return nil
	}
	event := f.Event.WithDefaults()
	return &event
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
