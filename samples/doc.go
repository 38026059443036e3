// Package samples provides ready-made coding tables and encoded message
// fixtures in both layout dialects.
//
// Each Pair couples the static-dialect and extensible-dialect descriptors
// of one message type with a byte-exact encoding of the same value in each
// dialect, so transforming one member of a pair must reproduce the other.
// The fixtures double as the transformer's conformance corpus and as demo
// input for cmd/transform.
package samples
