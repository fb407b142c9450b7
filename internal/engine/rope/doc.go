// Package rope implements the text storage for edi buffers.
//
// A Rope is an immutable balanced tree of string chunks. Operations return
// new Rope values and share structure with the original, which keeps edits
// on large files sub-linear and makes snapshots free.
//
// All public offsets are rune offsets, and positions are (line, column)
// pairs where column counts runes. Every node caches the rune count, byte
// count and newline count of its subtree, so offset/position conversion
// never scans the whole text.
package rope
