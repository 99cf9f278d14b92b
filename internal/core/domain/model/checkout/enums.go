package checkout

import (
	"fmt"

	"taproom/internal/pkg/errs"
)

// CustomerType distinguishes returning customers from first-time ones, who must register.
type CustomerType int

const (
	ReturningCustomer CustomerType = iota
	NewCustomer
)

func ParseCustomerType(s string) (CustomerType, error) {
	switch s {
	case "", "returning":
		return ReturningCustomer, nil
	case "new":
		return NewCustomer, nil
	default:
		return ReturningCustomer, errs.NewValueIsInvalidErrorWithCause("customerType", fmt.Errorf("%q is not a customer type", s))
	}
}

func (c CustomerType) String() string {
	if c == NewCustomer {
		return "new"
	}
	return "returning"
}

// DeliveryMethod is how the order reaches the customer. Delivery is the default.
type DeliveryMethod int

const (
	Delivery DeliveryMethod = iota
	Pickup
)

func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch s {
	case "", "delivery":
		return Delivery, nil
	case "pickup":
		return Pickup, nil
	default:
		return Delivery, errs.NewValueIsInvalidErrorWithCause("deliveryMethod", fmt.Errorf("%q is not a delivery method", s))
	}
}

func (d DeliveryMethod) String() string {
	if d == Pickup {
		return "pickup"
	}
	return "delivery"
}

// PaymentMethod is a label for the operator; no payment is processed.
type PaymentMethod int

const (
	PaymentUnset PaymentMethod = iota
	PaymentPix
	PaymentCard
	PaymentCash
)

func getPaymentCodes() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentUnset has no wire code
	return map[PaymentMethod]string{
		PaymentPix:  "pix",
		PaymentCard: "card",
		PaymentCash: "cash",
	}
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	if s == "" {
		return PaymentUnset, nil
	}
	for method, code := range getPaymentCodes() {
		if code == s {
			return method, nil
		}
	}
	return PaymentUnset, errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not a payment method", s))
}

func (p PaymentMethod) IsSet() bool {
	_, ok := getPaymentCodes()[p]
	return ok
}

func (p PaymentMethod) Code() string {
	return getPaymentCodes()[p]
}

// Label is the name shown to the operator.
func (p PaymentMethod) Label() string {
	switch p {
	case PaymentPix:
		return "PIX"
	case PaymentCard:
		return "Cartão"
	case PaymentCash:
		return "Dinheiro"
	case PaymentUnset:
		return ""
	}
	return ""
}
