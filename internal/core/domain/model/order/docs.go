// Package order provides domain entities and business logic for order
// management in the distribution system. It implements the Order aggregate
// root with line items, lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, references,
//     collection bookkeeping and lifecycle
//   - LineItem: An ordered product line with derived pricing and an
//     ordered/sold quantity summary
//   - Status: A state machine that enforces valid order status transitions
//   - PaymentStatus: A derived payment state kept consistent with the
//     collected versus collection amounts
//
// Key business rules:
//   - Orders are created in Processing status unless a back-dated entry
//     explicitly supplies Baki or Delivered
//   - Delivered and Cancelled are terminal; no transition leaves them
//   - An order's payment status always mirrors collectedAmount against
//     collectionAmount (Unpaid, PartialPaid, Paid)
//   - Line totals are recomputed from the per-package price on every
//     quantity edit and rounded to 2 fraction digits
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
