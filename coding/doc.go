// Package coding defines the descriptor model ("coding tables") that guides
// the wire-format transformer.
//
// A descriptor is a Kind-tagged Type describing one logical wire type:
// primitives, enums, bits, structs, nullable struct pointers, static unions
// (inline tag + payload padded to the largest arm), extensible unions
// (tag + envelope, payload out-of-line), arrays, strings, vectors, and
// handles. Aggregate descriptors carry the offsets, sizes, and trailing
// padding the schema compiler computed for their dialect.
//
// # Dialects
//
// Every aggregate descriptor exists twice: once per layout dialect. The Alt
// pointer links the two twins:
//
//	old.Alt == v1  and  v1.Alt == old
//
// Struct fields are linked the same way through Field.Alt. Union arms are
// matched positionally; both twins list their arms in the same order and
// agree on each arm's Ordinal.
//
// # Lifecycle
//
// Descriptor trees are emitted once by the schema compiler and never
// mutated. The transformer only reads them, so a single tree may be shared
// by any number of concurrent transformations.
//
// Validate checks the cross-dialect invariants (Alt reciprocity, field
// wiring, arm-count equality, ordinal bijectivity, data-offset legality) so
// that compiler output can be vetted at load time; the transformer itself
// assumes tables are well formed.
package coding
