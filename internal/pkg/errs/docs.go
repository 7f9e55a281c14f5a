// Package errs defines the error taxonomy shared by the routing core.
//
// Every class has a sentinel error and a struct type carrying details:
//   - ErrOutOfRange / OutOfRangeError: a location index outside the distance table
//   - ErrNotFound / NotFoundError: an unknown item id or an unresolvable address
//   - ErrInvalidInput / InvalidInputError: malformed numeric or time fields
//   - ErrInvariantViolation / InvariantViolationError: corrupt data, e.g. an item on two vehicles
//
// Struct errors unwrap to their sentinel so callers can classify with errors.Is.
// Errors caused by user input at query time are additionally wrapped in
// QueryError, which matches ErrQuery.
package errs
