// Package kernel provides the shared value objects of the farmadelivery domain.
//
// The package includes:
//   - ID: a positive numeric identifier for orders, products, pharmacies and couriers
//   - UUID: a random identifier used for domain events and outbox records
//   - Money: an exact decimal amount in pesos
//   - GeoPoint: a latitude/longitude pair with great-circle distance
//
// All value objects are immutable and validate on construction; their zero
// values fail Validate so that forgotten initialization surfaces early.
package kernel
