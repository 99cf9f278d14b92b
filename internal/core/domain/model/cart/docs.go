// Package cart models the shopping cart: an ordered list of line items, one per
// product, bound to at most one pinned store location.
//
// Invariants enforced here:
//   - at most one LineItem per ProductID; repeated adds increment quantity by one
//   - quantity is never below one
//   - an empty cart is never pinned
//   - extras (tonel, mugs, cups quote) exist only on keg lines and merge
//     field by field with last-write-wins (see MergeExtras)
//
// Location conflicts are detected by the cart guard domain service; this package
// only carries the conflict values it produces.
package cart
