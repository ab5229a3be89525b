// Package rope implements an efficient Rope data structure for large text editing.
//
// A Rope is a balanced B-tree representation of UTF-8 text, optimized for
// editors that need fast insertion and deletion anywhere in a document that
// may range from a few bytes to several gigabytes.
//
// # When to Use Rope vs string
//
// Use Rope when:
//   - Working with large documents (10KB+)
//   - Performing many insert/delete operations, especially away from the end
//   - Needing cheap clones and slices without copying the whole document
//   - Building text incrementally from many small pieces
//
// Use string when:
//   - Working with small, mostly-read documents
//   - Simplicity matters more than edit performance
//
// # Performance Characteristics
//
// Insert, Remove, byte/char/line conversions, and indexed access are
// O(log n) in the number of leaves. Clone is O(1): it shares the tree with
// the original and only diverges lazily, node by node, as each side is
// edited (copy-on-write). Append and Split are O(log n) as well.
//
// # Thread Safety
//
// A Rope is logically immutable from the point of view of any handle other
// than the one actively editing it: Insert, Remove, Split and Append each
// return a (possibly) new Rope, and any other clone of the same root is left
// untouched. Reading a Rope or a RopeSlice concurrently from multiple
// goroutines is safe. Editing the same Rope value from multiple goroutines
// concurrently is not: give each writer its own handle (obtained via Clone,
// which is O(1)).
//
// # Lineage
//
// This implementation follows the design of Boehm, Atkinson & Plass's
// "Ropes: an Alternative to Strings" (1995) and, more directly, the
// cessen/ropey crate for Rust: a B-tree of gap-buffered leaves carrying
// aggregate byte/scalar/line-break metrics in their parent's child array,
// edited through a copy-on-write path.
package rope
