// Package errs provides the error taxonomy shared by the order management core
// and its adapters. Every error kind follows the same shape:
//   - a sentinel error variable (e.g., ErrIllegalTransition) for errors.Is checks
//   - a struct type carrying the details (e.g., IllegalTransitionError) for errors.As
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Kinds raised by the business core:
//   - IllegalTransitionError: a state machine edge or precondition was violated
//   - InvalidQuantityError: a confirmed quantity is out of bounds
//   - InsufficientStockError: a lot adjustment would drive stock negative
//   - ObjectNotFoundError: a product, order, lot or price reference is missing
//   - ConflictRetryError: a concurrent writer won; re-read and reapply
//
// Input validation kinds: ValueIsRequiredError, ValueIsInvalidError,
// ValueIsOutOfRangeError and VersionIsInvalidError.
//
// The core never produces user-facing text. Adapters translate these kinds
// into transport-level responses.
package errs
