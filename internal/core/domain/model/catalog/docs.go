// Package catalog models the static product list of the storefront and the
// per-location price table applied to it.
//
// Products are immutable and defined at catalog-load time. A Catalog keeps them in
// display order and indexes them by ProductID. A PriceTable holds, per Location, an
// explicit override price per product plus a category-level fallback surcharge used
// for every product the overrides do not mention.
//
// Resolution of effective prices lives in the domain services package; this package
// only holds the data.
package catalog
