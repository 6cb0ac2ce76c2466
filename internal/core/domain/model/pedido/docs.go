// Package pedido provides the Pedido (order) aggregate of the pharmacy
// delivery system and the state machine that drives its lifecycle.
//
// The package includes:
//   - Pedido: the aggregate root with lines, totals, payment and courier assignment
//   - Status: the lifecycle state machine
//   - MetodoPago: the payment method
//   - StatusChanged: the domain event recorded on every transition
//
// Key business rules:
//   - A prescription is confirmed only while the order is Pendiente
//   - Orders can be cancelled until they are Listo
//   - A courier can accept an order only while it is Listo or EnCamino and unassigned
//   - A courier who rejected an order never sees it again
//   - Only the assigned courier can deliver an order
package pedido
