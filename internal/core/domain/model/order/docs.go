// Package order provides domain entities and business logic for the order
// lifecycle engine. It implements the Order aggregate root with transactional
// line-item management and a closed status state machine.
//
// The package includes:
//   - Order: the aggregate root owning customer, line items, total and status
//   - Item: one order line with a frozen price snapshot
//   - Status: the state machine enforcing valid lifecycle transitions
//
// Key business rules:
//   - An order always has a valid id, a non-empty customer name and at
//     least one line item
//   - The total always equals the sum of quantity × price_at_order over the
//     current line items
//   - Line items freeze the catalog price when added and are replaced
//     wholesale on modification
//   - Status updates follow the closed transition table; modification is
//     limited to Pending/Modified and cancellation to
//     Pending/Modified/Confirmed; Delivered and Cancelled are terminal
package order
