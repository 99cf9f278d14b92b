// Package session holds the checkout session aggregate: one shopper's active
// store, cart, checkout phase and whatever conflict or upsell offer is waiting
// for an answer.
//
// Every engine operation loads one session, changes it and stores it back.
// The session only enforces which phase an operation may run in; cart rules
// live in the cart package and the flow decisions in the domain services.
package session
