// Package errs provides standardized error types for the ordering assistant.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the failure taxonomy of the order
// engine:
//   - ObjectNotFoundError: an order or menu item id does not resolve
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a numeric value is outside its interval
//   - InvalidTransitionError: a status change violates the lifecycle table
//   - StorageError: the persistence layer failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The tool facade relies on this structure to turn any failure into a
// descriptive text response without losing its classification for tests.
package errs
