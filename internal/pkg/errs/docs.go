// Package errs provides standardized error types for the tailoring service.
//
// Each error type wraps a sentinel so callers can classify failures with
// errors.Is without inspecting messages:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or not allowed
//   - ValueIsOutOfRangeError: a value falls outside its permitted bounds
//   - ObjectNotFoundError: an aggregate or record cannot be found
//
// Validation errors from this package are the only errors that interrupt an
// order write. Adapters translate them into transport-level responses.
package errs
