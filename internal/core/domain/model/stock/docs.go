// Package stock provides the warehouse stock ledger for the distribution
// system: one keyed counter per (warehouse, product) pair plus an immutable
// pickup event log.
//
// The package includes:
//   - Item: the available-quantity counter for a (warehouse, product) pair
//   - PickupEvent: an immutable record of a dealer pickup establishing a
//     new available quantity
//
// Key business rules:
//   - Available quantity never goes negative
//   - A rejected consume leaves the counter unchanged
//   - Pickup events are append-only; the counter is the single source of
//     truth for the current available quantity
package stock
