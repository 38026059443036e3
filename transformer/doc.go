// Package transformer rewrites encoded messages between the two layout
// dialects of the wire format.
//
// # Dialects
//
// The same logical type is laid out differently by the two dialects:
//
//	            static (old)                 extensible (v1)
//	──────────────────────────────────────────────────────────────────
//	union       u32 tag, payload inline,     u32 ordinal, u32 pad,
//	            padded to largest arm        16-byte envelope,
//	            (tag widened to u64 when     payload out-of-line,
//	            the largest arm is           8-aligned
//	            8-aligned)
//
// Everything else — structs, struct pointers, arrays, strings, vectors,
// handles — is laid out identically, but the different union footprints
// shift the offsets and padding around them.
//
// # Operation
//
// Transform walks an encoded source buffer under the guidance of a coding
// table (see package coding) and writes the re-laid-out message into a
// caller-provided destination buffer:
//
//	n, err := transformer.Transform(transformer.V1ToOld, desc, src, dst)
//
// The walk keeps four cursors: source and destination, inline and
// out-of-line. Inline bytes are rewritten in place of one another; each
// out-of-line object is appended at the next 8-aligned offset of its
// arena. Padding in the destination is always zeroed, even where the
// source carried stray bytes, so output is canonical.
//
// # Laxness
//
// The transformer validates only what it needs to stay structurally sound:
// the direction, the root kind, arm lookups, and buffer bounds. Bounds on
// strings and vectors, UTF-8 well-formedness, envelope byte counts, and
// enum values are the business of the encoder and decoder that sit on
// either side of it.
//
// # Concurrency
//
// A transformation is a pure function of its inputs: descriptors are
// read-only, all state lives on the stack, and nothing is allocated on the
// success path. Distinct calls may run concurrently as long as their
// destination buffers are distinct.
package transformer
