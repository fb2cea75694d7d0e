// Package order provides domain entities and business logic for production
// order management in the fabrication backend. It implements the Order
// aggregate root with lifecycle management and state transitions, and the
// Item entity describing the window/door units an order manufactures.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine with an explicit transition table enforcing the
//     manufacturing workflow
//   - Item: A line item (product type, millimeter dimensions, quantity)
//     owned exclusively by one order
//
// Key business rules:
//   - Orders are created in InProgress status with a fresh external UUID
//   - Status moves only along the fixed transition table:
//     confirm InProgress->Scheduled, start Scheduled->InProgress,
//     finish InProgress->ForDelivery, deliver ForDelivery->Completed
//   - A transition from any other status fails and leaves the order unchanged
//   - Items carry strictly positive dimensions and quantity and are always
//     replaced as a complete set per order
//
// The numeric status codes are exposed on the wire and must not be renumbered.
package order
