// Package wire holds the byte-level laws of the wire format: alignment,
// presence markers, record geometry, and overflow-safe offset arithmetic.
package wire
