// Package errs provides standardized error types for the router order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure classes the order lifecycle
// exposes to callers:
//   - ObjectNotFoundError: a referenced order or tracking record is absent
//   - InvalidStateError: an operation the current status does not permit
//   - UnauthorizedError: the caller does not own the referenced order
//   - ValueIsInvalidError / ValueIsRequiredError: input validation failures
//   - ValueIsOutOfRangeError: bounded numeric or length validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels, which keeps
// transport-level mapping (HTTP status codes) independent of error text.
package errs
