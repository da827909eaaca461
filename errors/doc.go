// Package errors provides structured error types for the mask contract library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes the record type and storage key involved,
// a human-readable detail, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseStorage, errors.KindNotFound).
//		Key("config").
//		Detail("state not initialized").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Unauthorized(errors.PhaseExecute)
//	err := errors.NotFound(errors.PhaseStorage, "config")
//
// All errors implement the standard error interface and support errors.Is/As.
// Kind matchers (IsUnauthorized, IsNotFound, ...) classify any error that
// carries an *Error in its chain.
package errors
