// Package store implements the checkout area the simulation runs against:
// a GroceryStore made of regular, express and self-serve checkout lines.
//
// GroceryStore satisfies sim.Store and CheckoutLine satisfies sim.Line. Lines
// are laid out regular first, then express, then self-serve, and keep their
// index for the lifetime of the store.
package store
