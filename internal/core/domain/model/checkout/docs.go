// Package checkout holds the customer form collected during checkout and the
// pure derivation of which of its fields are required.
//
// The required-field set depends on three inputs only: customer type, whether
// the cart contains a keg, and the delivery method (plus the two toggles that
// switch blocks on and off). RequiredFields and MissingFields are pure
// functions of the Form and a CartProfile, so any edit to the form can be
// re-evaluated immediately.
//
// Required-field matrix:
//
//	always                         name, phone, payment method
//	new customer                   + government id, birth date, residential street/neighborhood/city
//	keg, event details not deferred + receiver name, event address, event city, event date
//	growler only, delivery         + delivery street/neighborhood/city, except a new customer
//	                                 without "ship to a different address" (residential is reused)
//	pickup                         no delivery address
package checkout
