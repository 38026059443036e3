// Package errors provides structured error types for the transformer library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes a field path into the message being
// walked, a human-readable detail, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseTransform, errors.KindBadState).
//		Path("payload", "arms[2]").
//		Detail("ordinal 0x%08x has no matching arm", ord).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidArgs("unknown transformation direction %d", dir)
//	err := errors.DstTooSmall(offset, size, len(dst))
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
