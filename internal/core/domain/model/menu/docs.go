// Package menu provides the read-only catalog side of the ordering domain.
//
// The package includes:
//   - Item: an immutable value object for one orderable menu entry
//   - DefaultCatalog: the static seed data loaded into an empty menu table
//
// Catalog entries are never mutated by the order engine. Orders reference
// them by id and freeze the price at order time, so later catalog changes
// never affect historical orders.
package menu
