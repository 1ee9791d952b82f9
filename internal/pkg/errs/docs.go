// Package errs provides standardized error types for the fulfillment engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the full error taxonomy of the workflow core:
//   - ObjectNotFoundError: unknown order, writer, or inventory item
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: malformed input
//   - InvalidTransitionError: action illegal in the order's current lifecycle state
//   - ConflictError: optimistic-concurrency version mismatch (race lost)
//   - InsufficientStockError: reservation cannot be satisfied
//   - ForbiddenError / UnauthorizedError: role or identity failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach enables uniform classification with errors.Is at
// the HTTP boundary, where each sentinel maps to exactly one status code.
package errs
