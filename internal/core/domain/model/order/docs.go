// Package order contains the Order aggregate: the immutable record assembled when
// a checkout is submitted and handed off to the store operator.
//
// An Order carries everything the operator needs (customer identity, delivery or
// event descriptor, priced line items split into regular and upsell lines,
// payment label, freight and totals). Its only mutable part is the journal
// status, which tracks whether the order has been published to downstream
// consumers:
//
//	Submitted ──> Dispatched
//
// Totals are computed by the constructor, never supplied, so that
// total == sum(unitPrice*quantity) + freight always holds, and freight is zero
// for pickup orders.
package order
