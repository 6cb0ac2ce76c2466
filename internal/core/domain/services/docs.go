// Package services provides domain services for rules that span more than
// one Pedido.
//
// The package includes:
//   - CourierDispatcher: enforces the one-active-order rule when a courier
//     accepts a pedido, and measures how far a courier is from a pharmacy.
package services
