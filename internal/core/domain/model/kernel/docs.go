// Package kernel provides the shared value objects of the storefront domain.
//
// The package includes:
//   - UUID: identifier for sessions and submitted orders
//   - Money: exact decimal amount in Brazilian reais
//   - Location: the closed set of stores a cart can be priced and fulfilled at
//
// All values are immutable and safe for concurrent use. Zero values are either
// meaningful (Money zero, LocationUnknown) or rejected by Validate (UUID).
package kernel
