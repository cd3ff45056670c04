// Package services provides domain services that implement business logic
// not naturally belonging to a single aggregate root in the distribution system.
//
// The package includes:
//   - PricingCalculator: derives dealer and agent prices and line totals from
//     a base price, commission percentages and ordered quantity
//
// Domain services are stateless; they validate their inputs and return
// computed values without touching persistence.
package services
