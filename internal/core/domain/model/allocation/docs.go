// Package allocation provides the daily inventory allocation: one record per
// (warehouse, product, packer, day) tracking quantity packed out against
// quantity sold and whether the unsold remainder was returned.
//
// Pack-out supports two coexisting semantics selected by the caller:
//   - Replace: the latest out quantity for the day wins and the stock
//     ledger is reconciled by the delta versus the previous value
//     (edit-and-resubmit)
//   - Accumulate: each pack-out adds to the day's running total and
//     consumes exactly that amount from the stock ledger (multiple
//     independent pack-out events the same day)
//
// Sales recorded by delivery and baki continuation increment the day's sell
// quantity; marking a record returned restocks the unsold remainder.
package allocation
