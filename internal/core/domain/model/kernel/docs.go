// Package kernel provides core domain primitives for the ordering assistant.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for order identifiers with validation and comparison
//   - Money: A value object for prices and totals with exact decimal arithmetic
//
// These primitives enforce domain invariants, ensuring that domain objects
// are always in a valid state. They are immutable and thread-safe.
package kernel
