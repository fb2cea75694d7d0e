// Package errs provides standardized error types for the fabrication backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidStateError: For when an order state transition precondition fails
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsOutOfRangeError: For when a value is outside allowed bounds
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach lets the HTTP layer classify failures with
// errors.Is while the core keeps full error detail.
package errs
