// Package vending implements the transactional core of the vending machine:
// the purchase decision, the command router and the lock that keeps stock and
// credit changes atomic.
//
// Every rejected action leaves the catalog and the credit ledger untouched.
// Stock and credit only change together, on the single successful purchase
// path.
package vending
