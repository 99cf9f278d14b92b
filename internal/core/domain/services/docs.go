// Package services provides the domain services of the order orchestration
// engine. They hold the rules that span the catalog, the cart and the checkout
// session and that do not belong to a single aggregate.
//
// The package includes:
//   - PricingResolver: location-dependent effective prices
//   - CartGuard: the one-location-per-cart rule and its conflict resolutions
//   - UpsellRecommender: keg accessory and growler suggestions before checkout
//   - CheckoutFlow: the checkout request, conflict, upsell, form and submit steps
//   - OrderAssembler: builds the order record with freight from a completed form
//   - KegCalculator: suggests a keg size from guest count and event length
//
// Services are values without mutable state; every call works on the
// aggregates it is given.
package services
