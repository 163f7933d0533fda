// Package survivor implements the survivor-path graph at the heart of the
// online Viterbi decoder: a time-ordered, dynamically pruned forest of
// per-state nodes whose convergence point (the "root") bounds how much of
// the decoded prefix must be retained before it can be safely emitted.
//
// 🚀 Shape of the graph
//
//	Exactly K nodes are appended per time step, in state order. Each node
//	holds the state it represents, the time step, a parent reference (the
//	predecessor state that achieved its max-likelihood score), and a
//	live child count. Nodes are linked two ways:
//
//	  - an intrusive insertion-order sequence (used by Append's backward
//	    offset lookup and by Compress/FreeDummyNodes, which scan tail to
//	    head)
//	  - parent pointers (the semantic survivor-path forest used by
//	    FindNewRoot and by the decoder's traceback)
//
// ✨ Compression & reclamation
//
//	Compress shortcuts parent pointers across chains with exactly one
//	surviving descendant. It zeroes the child count of each skipped
//	intermediate and clears its parent, but does not remove it — the
//	freed intermediates are swept up by the FreeDummyNodes pass that
//	follows. This
//	two-pass discipline is deliberate (see the package-level tests for the
//	scenario it exists to handle) and must not be folded into one pass.
//
// Nodes are plain Go pointers managed by the garbage collector; unlike a
// systems language with manual memory, there is no need for an arena of
// integer handles — FreeDummyNodes unlinking a node from the sequence is
// enough for it to become collectible once nothing else holds a pointer
// to it (including as some other node's Parent).
package survivor
